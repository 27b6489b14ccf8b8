// Package events publishes round lifecycle events over NATS. The
// simulator is fully functional without a broker; a nil *Publisher is
// safe everywhere and publishes nothing.
package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// Subjects for the two event streams downstream consumers care about.
const (
	SubjectRoundAdjudicated = "bp.round.adjudicated"
	SubjectSpeechGenerated  = "bp.speech.generated"
)

// RoundAdjudicated is emitted once per completed adjudication.
type RoundAdjudicated struct {
	RoundID  string   `json:"round_id"`
	Motion   string   `json:"motion"`
	UserRole string   `json:"user_role"`
	Ranking  []string `json:"ranking"`
}

// SpeechGenerated is emitted for every AI speech the simulator produces.
type SpeechGenerated struct {
	Motion     string `json:"motion"`
	Role       string `json:"role"`
	SkillLevel string `json:"skill_level"`
	Engaged    bool   `json:"engaged"`
}

// Publisher wraps a NATS connection for fire-and-forget publishing.
type Publisher struct {
	conn   *nats.Conn
	logger *slog.Logger
}

// Connect dials the broker with retrying reconnect behavior. Connection
// loss is logged, not fatal; publishes during an outage are dropped by
// the client's buffer once it fills.
func Connect(url string, logger *slog.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Publisher{conn: nc, logger: logger}, nil
}

// Publish marshals and publishes one event. Nil receivers no-op so the
// service runs identically without a broker configured.
func (p *Publisher) Publish(subject string, event any) error {
	if p == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

// Close drains the connection.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	p.conn.Close()
}
