package cachesync

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// ChangeChannel is the NOTIFY channel raised by the product_attr triggers
const ChangeChannel = "product_attr_changed"

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	defaultPingInterval  = 90 * time.Second
)

// ChangeListener invalidates locally cached read models when any instance
// writes to the attribute tables. It uses PostgreSQL LISTEN/NOTIFY.
type ChangeListener struct {
	mu       sync.Mutex
	connStr  string
	onChange func(ctx context.Context)
	logger   *zap.Logger

	pingInterval time.Duration

	listener *pq.Listener
	notify   <-chan *pq.Notification
	ping     func() error
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopped  bool
}

// NewChangeListener creates a ChangeListener.
// connStr is the PostgreSQL connection string used for the LISTEN connection.
func NewChangeListener(connStr string, onChange func(ctx context.Context), logger *zap.Logger) *ChangeListener {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChangeListener{
		connStr:      connStr,
		onChange:     onChange,
		logger:       logger,
		pingInterval: defaultPingInterval,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}
}

// Start opens the LISTEN connection and begins handling notifications.
func (l *ChangeListener) Start() error {
	reportProblem := func(ev pq.ListenerEventType, err error) {
		if err != nil {
			l.logger.Warn("Change listener connection problem", zap.Error(err))
		}
	}

	listener := pq.NewListener(l.connStr, minReconnectInterval, maxReconnectInterval, reportProblem)
	if err := listener.Listen(ChangeChannel); err != nil {
		listener.Close()
		return fmt.Errorf("failed to listen on %s: %w", ChangeChannel, err)
	}

	l.listener = listener
	l.run(listener.Notify, listener.Ping)
	return nil
}

// run starts the notification loop on the given source.
func (l *ChangeListener) run(notify <-chan *pq.Notification, ping func() error) {
	l.notify = notify
	l.ping = ping
	go l.handleNotifications()
}

// Stop stops the listener and waits for the notification loop to exit.
func (l *ChangeListener) Stop() error {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return nil
	}
	l.stopped = true
	close(l.stopCh)
	l.mu.Unlock()

	if l.notify != nil {
		<-l.doneCh
	}
	if l.listener != nil {
		return l.listener.Close()
	}
	return nil
}

// handleNotifications processes incoming NOTIFY events.
func (l *ChangeListener) handleNotifications() {
	defer close(l.doneCh)

	ticker := time.NewTicker(l.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopCh:
			return
		case notification, ok := <-l.notify:
			if !ok {
				return
			}
			// nil means the connection was re-established and notifications may have been missed
			if notification == nil {
				l.logger.Info("Change listener reconnected, invalidating cache")
			} else {
				l.logger.Debug("Received change notification", zap.String("table", notification.Extra))
			}
			l.onChange(context.Background())
		case <-ticker.C:
			// pq.Listener.Ping returns once the server answers or the connection drops
			if err := l.ping(); err != nil {
				l.logger.Warn("Change listener ping failed", zap.Error(err))
			}
		}
	}
}
