package storage

const Schema = `
-- Stems already computed, keyed by algorithm and input word
CREATE TABLE IF NOT EXISTS stems (
    language TEXT NOT NULL,
    word TEXT NOT NULL,
    stem TEXT NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (language, word)
);
CREATE INDEX IF NOT EXISTS idx_stems_stem ON stems(language, stem);

-- Cache metadata
CREATE TABLE IF NOT EXISTS cache_metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

INSERT OR IGNORE INTO cache_metadata (key, value) VALUES
    ('cache_version', '1');
`
