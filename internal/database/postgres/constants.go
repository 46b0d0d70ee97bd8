package postgres

// SQL statements for the player_records table
const (
	upsertRecordSQL = `
INSERT INTO player_records (record_key, schema_version, data, updated_at)
VALUES ($1, COALESCE(($2::jsonb->>'schema_version')::int, 0), $2::jsonb, NOW())
ON CONFLICT (record_key) DO UPDATE
SET schema_version = EXCLUDED.schema_version,
    data = EXCLUDED.data,
    updated_at = NOW()`

	selectRecordSQL = `SELECT data FROM player_records WHERE record_key = $1`

	deleteRecordSQL = `DELETE FROM player_records WHERE record_key = $1`

	listRecordKeysSQL = `SELECT record_key FROM player_records ORDER BY record_key`
)

// Error Messages - Record Operations
const (
	ErrMsgFailedToWriteRecord  = "failed to write record"
	ErrMsgFailedToReadRecord   = "failed to read record"
	ErrMsgFailedToDeleteRecord = "failed to delete record"
	ErrMsgFailedToListRecords  = "failed to list records"
)
