package sqlite

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3"

	"whisper-prompting/internal/app/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS transcripts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	file_name TEXT NOT NULL,
	file_path TEXT NOT NULL,
	prompt TEXT NOT NULL DEFAULT '',
	prompt_source TEXT NOT NULL DEFAULT 'none',
	instruction TEXT NOT NULL DEFAULT '',
	transcript TEXT NOT NULL DEFAULT '',
	audio_duration REAL NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL,
	error_message TEXT NOT NULL DEFAULT ''
);`

type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (creating if needed) the transcript database at the
// given path.
func NewSQLiteDB(dbFilePath string) *SQLiteDB {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbFilePath))
	if err != nil {
		log.Fatalf("Failed to open database: %v\n", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		log.Fatalf("Failed to create transcripts table: %v\n", err)
	}
	return &SQLiteDB{db: db}
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

func (sdb *SQLiteDB) Record(t model.Transcript) (int64, error) {
	insertSQL := `INSERT INTO transcripts (file_name, file_path, prompt, prompt_source, instruction, transcript, audio_duration, created_at, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`
	result, err := sdb.db.Exec(insertSQL, t.FileName, t.FilePath, t.Prompt, t.PromptSource,
		t.Instruction, t.Transcript, t.AudioDuration, t.CreatedAt, t.ErrorMessage)
	if err != nil {
		return 0, fmt.Errorf("insert transcript failed: %w", err)
	}
	return result.LastInsertId()
}

func (sdb *SQLiteDB) GetByID(id int) (model.Transcript, error) {
	query := `
		SELECT id, file_name, file_path, prompt, prompt_source, instruction, transcript, audio_duration, created_at, error_message
		FROM transcripts
		WHERE id = ?;`
	var t model.Transcript
	err := sdb.db.QueryRow(query, id).Scan(&t.ID, &t.FileName, &t.FilePath, &t.Prompt,
		&t.PromptSource, &t.Instruction, &t.Transcript, &t.AudioDuration, &t.CreatedAt, &t.ErrorMessage)
	if err != nil {
		return model.Transcript{}, err
	}
	return t, nil
}

func (sdb *SQLiteDB) List(limit int) ([]model.Transcript, error) {
	query := `
		SELECT id, file_name, file_path, prompt, prompt_source, instruction, transcript, audio_duration, created_at, error_message
		FROM transcripts
		ORDER BY created_at DESC, id DESC`
	args := make([]interface{}, 0, 1)
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := sdb.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	transcripts := make([]model.Transcript, 0)
	for rows.Next() {
		var t model.Transcript
		err = rows.Scan(&t.ID, &t.FileName, &t.FilePath, &t.Prompt, &t.PromptSource,
			&t.Instruction, &t.Transcript, &t.AudioDuration, &t.CreatedAt, &t.ErrorMessage)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}
		transcripts = append(transcripts, t)
	}
	return transcripts, rows.Err()
}

func (sdb *SQLiteDB) CheckIfFileProcessed(fileName string) (int, error) {
	query := `SELECT id FROM transcripts WHERE file_name = ? AND error_message = ''`
	row := sdb.db.QueryRow(query, fileName)
	var id int
	err := row.Scan(&id)
	return id, err
}
