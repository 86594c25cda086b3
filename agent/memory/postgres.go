package memory

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

	contractx "github.com/solacechat/solace/agent/contract"
)

type PostgresConfig struct {
	DSN string `envconfig:"DSN" split_words:"true" required:"true"`
}

type messageRow struct {
	bun.BaseModel `bun:"table:messages,alias:m"`

	ID        int64     `bun:"id,pk,autoincrement"`
	ThreadID  string    `bun:"thread_id,notnull"`
	Sender    string    `bun:"sender,notnull"`
	Content   string    `bun:"content,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

// PostgresStore persists the conversation log in a messages table.
// History order is the insert order, via the serial primary key.
type PostgresStore struct {
	db *bun.DB

	now func() time.Time
}

func NewPostgresStore(cfg PostgresConfig) (*PostgresStore, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	return &PostgresStore{db: db, now: time.Now}, nil
}

// EnsureSchema creates the messages table when missing. Called once at
// startup before the store is handed to the service.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*messageRow)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create messages table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, threadID string, sender contractx.Sender, content string) error {
	threadID = strings.TrimSpace(threadID)
	if threadID == "" {
		return fmt.Errorf("%w: thread id is empty", contractx.ErrValidation)
	}
	if !sender.Valid() {
		return fmt.Errorf("%w: unknown sender %q", contractx.ErrValidation, sender)
	}

	row := &messageRow{
		ThreadID:  threadID,
		Sender:    string(sender),
		Content:   content,
		CreatedAt: s.now().UTC(),
	}
	if _, err := s.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (s *PostgresStore) History(ctx context.Context, threadID string) ([]contractx.Message, error) {
	var rows []messageRow
	err := s.db.NewSelect().
		Model(&rows).
		Where("m.thread_id = ?", strings.TrimSpace(threadID)).
		Order("m.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select messages: %w", err)
	}

	out := make([]contractx.Message, 0, len(rows))
	for _, r := range rows {
		out = append(out, contractx.Message{
			ThreadID:  r.ThreadID,
			Sender:    contractx.Sender(r.Sender),
			Content:   r.Content,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
