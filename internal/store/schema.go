package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS incomes (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    plan                 TEXT NOT NULL,
    source               TEXT NOT NULL,
    amount               TEXT NOT NULL,
    frequency            TEXT NOT NULL DEFAULT 'monthly',
    percentage           TEXT,
    created_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS expenses (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    plan                 TEXT NOT NULL,
    category             TEXT NOT NULL DEFAULT 'fixed',
    description          TEXT NOT NULL,
    amount               TEXT NOT NULL,
    percentage           TEXT,
    created_at           TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_incomes_plan ON incomes(plan);
CREATE INDEX IF NOT EXISTS idx_expenses_plan ON expenses(plan);
`
