package sqlite

// Schema DDL. The database is rebuilt from tallies.jsonl on every Attach, so
// there are no migrations.
const (
	createTallies = `CREATE TABLE tallies (
    tally_id TEXT PRIMARY KEY,
    consumer TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	createTallyCounts = `CREATE TABLE tally_counts (
    tally_id TEXT NOT NULL,
    item TEXT NOT NULL,
    count INTEGER NOT NULL,
    PRIMARY KEY (tally_id, item),
    FOREIGN KEY (tally_id) REFERENCES tallies(tally_id)
);`
)

// Index DDL for List filters and ordering.
const (
	idxTalliesConsumer = `CREATE INDEX idx_tallies_consumer ON tallies(consumer);`
	idxTalliesCreated  = `CREATE INDEX idx_tallies_created ON tallies(created_at, tally_id);`
)

// schemaDDL lists every statement in dependency order.
var schemaDDL = []string{
	createTallies,
	createTallyCounts,
	idxTalliesConsumer,
	idxTalliesCreated,
}

// timeLayout is fixed-width so that created_at sorts lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
