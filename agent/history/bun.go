package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	contractx "github.com/promotor-ai/promotor/agent/contract"
	statex "github.com/promotor-ai/promotor/agent/state"
)

var ErrEmptyConversationID = errors.New("conversation id is empty")

// defaultHistoryLimit bounds how many prior messages a turn loads; older
// messages stay in the table but never reach the model.
const defaultHistoryLimit = 40

type PostgresConfig struct {
	DSN          string        `envconfig:"DSN" split_words:"true" required:"true"`
	MaxOpenConns int           `envconfig:"MAX_OPEN_CONNS" split_words:"true" default:"4"`
	Timeout      time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"5s"`
}

type messageRow struct {
	bun.BaseModel `bun:"table:conversation_messages,alias:cm"`

	ID             int64     `bun:"id,pk,autoincrement"`
	ConversationID string    `bun:"conversation_id,notnull"`
	Role           string    `bun:"role,notnull"`
	Content        string    `bun:"content,notnull"`
	CreatedAt      time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// BunStore persists conversation logs in Postgres through bun.
type BunStore struct {
	db    *bun.DB
	limit int
}

var _ contractx.HistoryStore = (*BunStore)(nil)

type BunStoreOption func(*BunStore)

// WithHistoryLimit overrides how many prior messages Load returns.
func WithHistoryLimit(n int) BunStoreOption {
	return func(s *BunStore) {
		if n > 0 {
			s.limit = n
		}
	}
}

// NewBunDB opens the Postgres connection used by the history store.
func NewBunDB(cfg PostgresConfig) (*bun.DB, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(dsn),
		pgdriver.WithTimeout(cfg.Timeout),
	))
	if cfg.MaxOpenConns > 0 {
		sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	return bun.NewDB(sqldb, pgdialect.New()), nil
}

func NewBunStore(db *bun.DB, opts ...BunStoreOption) *BunStore {
	s := &BunStore{db: db, limit: defaultHistoryLimit}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// EnsureSchema creates the messages table when it does not exist yet.
func (s *BunStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*messageRow)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create conversation_messages table: %w", err)
	}
	return nil
}

// Load returns the most recent messages of a conversation in chronological
// order.
func (s *BunStore) Load(ctx context.Context, conversationID string) ([]statex.Message, error) {
	if strings.TrimSpace(conversationID) == "" {
		return nil, ErrEmptyConversationID
	}

	var rows []messageRow
	err := s.db.NewSelect().
		Model(&rows).
		Where("conversation_id = ?", conversationID).
		OrderExpr("id DESC").
		Limit(s.limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("load conversation %s: %w", conversationID, err)
	}

	// Rows come back newest-first; flip to chronological.
	out := make([]statex.Message, len(rows))
	for i, row := range rows {
		out[len(rows)-1-i] = statex.Message{
			Role:    statex.Role(row.Role),
			Content: row.Content,
		}
	}
	return out, nil
}

func (s *BunStore) Append(ctx context.Context, conversationID string, msgs ...statex.Message) error {
	if strings.TrimSpace(conversationID) == "" {
		return ErrEmptyConversationID
	}
	if len(msgs) == 0 {
		return nil
	}

	rows := make([]messageRow, len(msgs))
	now := time.Now().UTC()
	for i, m := range msgs {
		rows[i] = messageRow{
			ConversationID: conversationID,
			Role:           string(m.Role),
			Content:        m.Content,
			CreatedAt:      now,
		}
	}

	if _, err := s.db.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return fmt.Errorf("append to conversation %s: %w", conversationID, err)
	}
	return nil
}
