package pg

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"whisper-prompting/internal/app/model"
)

// PostgresDB is the Postgres-backed TranscriptDAO, for deployments that
// share transcript history across machines. Schema mirrors the sqlite
// backend.
type PostgresDB struct {
	db *sql.DB
}

func NewPostgresDB(connectionString string) (*PostgresDB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}
	return &PostgresDB{db: db}, nil
}

// NewPostgresDBWithConn wraps an existing connection; used by tests.
func NewPostgresDBWithConn(db *sql.DB) *PostgresDB {
	return &PostgresDB{db: db}
}

func (pdb *PostgresDB) Close() error {
	return pdb.db.Close()
}

func (pdb *PostgresDB) Record(t model.Transcript) (int64, error) {
	insertSQL := `INSERT INTO transcripts (file_name, file_path, prompt, prompt_source, instruction, transcript, audio_duration, created_at, error_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;`
	var id int64
	err := pdb.db.QueryRow(insertSQL, t.FileName, t.FilePath, t.Prompt, t.PromptSource,
		t.Instruction, t.Transcript, t.AudioDuration, t.CreatedAt, t.ErrorMessage).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert transcript failed: %w", err)
	}
	return id, nil
}

func (pdb *PostgresDB) GetByID(id int) (model.Transcript, error) {
	query := `
		SELECT id, file_name, file_path, prompt, prompt_source, instruction, transcript, audio_duration, created_at, error_message
		FROM transcripts
		WHERE id = $1`
	var t model.Transcript
	err := pdb.db.QueryRow(query, id).Scan(&t.ID, &t.FileName, &t.FilePath, &t.Prompt,
		&t.PromptSource, &t.Instruction, &t.Transcript, &t.AudioDuration, &t.CreatedAt, &t.ErrorMessage)
	if err != nil {
		return model.Transcript{}, err
	}
	return t, nil
}

func (pdb *PostgresDB) List(limit int) ([]model.Transcript, error) {
	query := `
		SELECT id, file_name, file_path, prompt, prompt_source, instruction, transcript, audio_duration, created_at, error_message
		FROM transcripts
		ORDER BY created_at DESC, id DESC`
	args := make([]interface{}, 0, 1)
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := pdb.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var transcripts []model.Transcript
	for rows.Next() {
		var t model.Transcript
		err = rows.Scan(&t.ID, &t.FileName, &t.FilePath, &t.Prompt, &t.PromptSource,
			&t.Instruction, &t.Transcript, &t.AudioDuration, &t.CreatedAt, &t.ErrorMessage)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}
		transcripts = append(transcripts, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}
	return transcripts, nil
}

func (pdb *PostgresDB) CheckIfFileProcessed(fileName string) (int, error) {
	query := `SELECT id FROM transcripts WHERE file_name = $1 AND error_message = ''`
	row := pdb.db.QueryRow(query, fileName)
	var id int
	err := row.Scan(&id)
	return id, err
}
