package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/RRHH-api/internal/domain"
	"github.com/jhoicas/RRHH-api/internal/domain/entity"
	"github.com/jhoicas/RRHH-api/internal/domain/repository"
)

var _ repository.CandidateRepository = (*CandidateRepo)(nil)

const candidateColumns = `id, name, email, phone, position, experience, status, resume, created_at`

// CandidateRepo implementación del puerto CandidateRepository sobre PostgreSQL.
type CandidateRepo struct {
	q Querier
}

// NewCandidateRepository construye el adaptador de persistencia para candidatos. Pasar pool o tx (Querier).
func NewCandidateRepository(q Querier) *CandidateRepo {
	return &CandidateRepo{q: q}
}

// Create persiste un nuevo candidato.
func (r *CandidateRepo) Create(c *entity.Candidate) error {
	query := `
		INSERT INTO candidates (id, name, email, phone, position, experience, status, resume, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Email, c.Phone, c.Position, c.Experience, c.Status, c.Resume, c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert candidate: %w", err)
	}
	return nil
}

// GetByID obtiene un candidato por ID.
func (r *CandidateRepo) GetByID(id string) (*entity.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	return scanCandidate(r.q.QueryRow(context.Background(), query, id), "get candidate by id")
}

// GetByEmail obtiene un candidato por email.
func (r *CandidateRepo) GetByEmail(email string) (*entity.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE email = $1`
	return scanCandidate(r.q.QueryRow(context.Background(), query, email), "get candidate by email")
}

// List devuelve todos los candidatos, más recientes primero.
func (r *CandidateRepo) List() ([]*entity.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()
	var list []*entity.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows, "scan candidate")
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza un candidato.
func (r *CandidateRepo) Update(c *entity.Candidate) error {
	query := `
		UPDATE candidates
		SET name = $2, email = $3, phone = $4, position = $5, experience = $6,
		    status = $7, resume = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Email, c.Phone, c.Position, c.Experience, c.Status, c.Resume,
	)
	if err != nil {
		return fmt.Errorf("update candidate: %w", err)
	}
	return nil
}

// Delete elimina un candidato por ID.
func (r *CandidateRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}
	return nil
}

func scanCandidate(row pgx.Row, op string) (*entity.Candidate, error) {
	var c entity.Candidate
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Position, &c.Experience, &c.Status,
		&c.Resume, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}
