// Package postgres is a PostgreSQL implementation of the storage interface
// built on a pgx connection pool.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cardnight/ledger/internal/model"
	"github.com/cardnight/ledger/internal/storage"
)

const (
	playerColumns = `id, name, emoji, description, created_at, wins, current_streak, max_streak`
	gameColumns   = `id, winner_id, date, time, place, game_type, mood, participants, badges, comment, created_at`
)

// Storage persists players and games in PostgreSQL
type Storage struct {
	pool *pgxpool.Pool
}

// New connects to the database, verifies the connection and creates the schema
func New(ctx context.Context, cfg Config) (*Storage, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := NewWithPool(pool)
	if err := s.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// NewWithPool creates a Storage from an existing pool
func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

// EnsureSchema creates the tables if they do not exist
func (s *Storage) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Close releases every pooled connection
func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, p *model.Player) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO players (`+playerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			emoji = EXCLUDED.emoji,
			description = EXCLUDED.description,
			created_at = EXCLUDED.created_at,
			wins = EXCLUDED.wins,
			current_streak = EXCLUDED.current_streak,
			max_streak = EXCLUDED.max_streak`,
		string(p.ID), p.Name, p.Emoji, p.Description, p.CreatedAt,
		p.Aggregates.Wins, p.Aggregates.CurrentStreak, p.Aggregates.MaxStreak,
	)
	if err != nil {
		return fmt.Errorf("save player %s: %w", p.ID, err)
	}
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+playerColumns+` FROM players WHERE id = $1`, string(id))
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("get player %s: %w", id, err)
	}
	return p, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+playerColumns+` FROM players ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	players := []*model.Player{}
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM players WHERE id = $1`, string(id)); err != nil {
		return fmt.Errorf("delete player %s: %w", id, err)
	}
	return nil
}

func (s *Storage) SavePlayerAggregates(ctx context.Context, id model.PlayerID, agg model.Aggregates) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE players SET wins = $2, current_streak = $3, max_streak = $4
		WHERE id = $1`,
		string(id), agg.Wins, agg.CurrentStreak, agg.MaxStreak,
	)
	if err != nil {
		return fmt.Errorf("save aggregates %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPlayerNotFound
	}
	return nil
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var (
		p  model.Player
		id string
	)
	err := row.Scan(&id, &p.Name, &p.Emoji, &p.Description, &p.CreatedAt,
		&p.Aggregates.Wins, &p.Aggregates.CurrentStreak, &p.Aggregates.MaxStreak)
	if err != nil {
		return nil, err
	}
	p.ID = model.PlayerID(id)
	return &p, nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, g *model.Game) error {
	participants := make([]string, len(g.Participants))
	for i, id := range g.Participants {
		participants[i] = string(id)
	}
	badges := g.Badges
	if badges == nil {
		badges = []string{}
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO games (`+gameColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			winner_id = EXCLUDED.winner_id,
			date = EXCLUDED.date,
			time = EXCLUDED.time,
			place = EXCLUDED.place,
			game_type = EXCLUDED.game_type,
			mood = EXCLUDED.mood,
			participants = EXCLUDED.participants,
			badges = EXCLUDED.badges,
			comment = EXCLUDED.comment,
			created_at = EXCLUDED.created_at`,
		string(g.ID), string(g.WinnerID), g.Date, g.Time, g.Place,
		string(g.GameType), string(g.Mood), participants, badges, g.Comment, g.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save game %s: %w", g.ID, err)
	}
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+gameColumns+` FROM games WHERE id = $1`, string(id))
	g, err := scanGame(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGameNotFound
		}
		return nil, fmt.Errorf("get game %s: %w", id, err)
	}
	return g, nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.Game, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+gameColumns+` FROM games ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	games := []*model.Game{}
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM games WHERE id = $1`, string(id)); err != nil {
		return fmt.Errorf("delete game %s: %w", id, err)
	}
	return nil
}

func scanGame(row pgx.Row) (*model.Game, error) {
	var (
		g                            model.Game
		id, winnerID, gameType, mood string
		participants, badges         []string
	)
	err := row.Scan(&id, &winnerID, &g.Date, &g.Time, &g.Place, &gameType, &mood,
		&participants, &badges, &g.Comment, &g.CreatedAt)
	if err != nil {
		return nil, err
	}

	g.ID = model.GameID(id)
	g.WinnerID = model.PlayerID(winnerID)
	g.GameType = model.GameType(gameType)
	g.Mood = model.Mood(mood)
	if len(participants) > 0 {
		g.Participants = make([]model.PlayerID, len(participants))
		for i, p := range participants {
			g.Participants[i] = model.PlayerID(p)
		}
	}
	if len(badges) > 0 {
		g.Badges = badges
	}
	return &g, nil
}
