package postgres

// Games reference players by ID without a foreign key: deleting a player
// leaves their games in place.
const schema = `
CREATE TABLE IF NOT EXISTS players (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	emoji          TEXT NOT NULL DEFAULT '',
	description    TEXT NOT NULL DEFAULT '',
	created_at     TIMESTAMPTZ NOT NULL,
	wins           INTEGER NOT NULL DEFAULT 0,
	current_streak INTEGER NOT NULL DEFAULT 0,
	max_streak     INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS games (
	id           TEXT PRIMARY KEY,
	winner_id    TEXT NOT NULL,
	date         TEXT NOT NULL,
	time         TEXT NOT NULL DEFAULT '',
	place        TEXT NOT NULL DEFAULT '',
	game_type    TEXT NOT NULL,
	mood         TEXT NOT NULL,
	participants TEXT[] NOT NULL DEFAULT '{}',
	badges       TEXT[] NOT NULL DEFAULT '{}',
	comment      TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS games_created_at_idx ON games (created_at, id);
CREATE INDEX IF NOT EXISTS players_created_at_idx ON players (created_at, id);
`
