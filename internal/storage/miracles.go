package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/miracle-catalog/internal/models"
)

// CreateMiracle сохраняет документ чуда.
func (s *Storage) CreateMiracle(ctx context.Context, m models.Miracle) error {
	const op = "storage.CreateMiracle"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	doc, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	query := `INSERT INTO miracles (id, name, country, century, status, doc, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err = s.DB.ExecContext(ctx, query,
		m.ID, m.Name, m.Country, m.Century, m.Status, doc, m.CreatedAt, m.UpdatedAt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetMiracle возвращает документ по идентификатору или ErrMiracleNotFound.
func (s *Storage) GetMiracle(ctx context.Context, id string) (*models.Miracle, error) {
	const op = "storage.GetMiracle"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	key, ok := miracleKey(id)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrMiracleNotFound)
	}
	var doc []byte
	err := s.DB.QueryRowContext(ctx, `SELECT doc FROM miracles WHERE id = $1`, key).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrMiracleNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	m, err := decodeMiracle(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}

// UpdateMiracle перезаписывает документ целиком.
func (s *Storage) UpdateMiracle(ctx context.Context, m models.Miracle) error {
	const op = "storage.UpdateMiracle"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	key, ok := miracleKey(m.ID)
	if !ok {
		return fmt.Errorf("%s: %w", op, ErrMiracleNotFound)
	}
	doc, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	query := `UPDATE miracles
			  SET name = $2, country = $3, century = $4, status = $5, doc = $6, updated_at = $7
			  WHERE id = $1`
	res, err := s.DB.ExecContext(ctx, query,
		key, m.Name, m.Country, m.Century, m.Status, doc, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = expectAffected(res, ErrMiracleNotFound); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeleteMiracle удаляет документ по идентификатору.
func (s *Storage) DeleteMiracle(ctx context.Context, id string) error {
	const op = "storage.DeleteMiracle"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	key, ok := miracleKey(id)
	if !ok {
		return fmt.Errorf("%s: %w", op, ErrMiracleNotFound)
	}
	res, err := s.DB.ExecContext(ctx, `DELETE FROM miracles WHERE id = $1`, key)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = expectAffected(res, ErrMiracleNotFound); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// miracleKey приводит идентификатор к каноническому виду UUID.
// Остальные строки не могут совпасть ни с одной записью.
func miracleKey(id string) (string, bool) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return uid.String(), true
}

// DeleteMiraclesByCentury удаляет все документы указанного века и возвращает их идентификаторы.
// Если ничего не удалено, возвращается ErrNoMiracles.
func (s *Storage) DeleteMiraclesByCentury(ctx context.Context, century string) ([]string, error) {
	const op = "storage.DeleteMiraclesByCentury"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, `DELETE FROM miracles WHERE century = $1 RETURNING id`, century)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoMiracles)
	}
	return ids, nil
}

// ListMiracles возвращает документы, подходящие под фильтр, в порядке добавления.
func (s *Storage) ListMiracles(ctx context.Context, f models.MiracleFilter) ([]models.Miracle, error) {
	const op = "storage.ListMiracles"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query, args := buildListQuery(f)
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.Miracle, 0)
	for rows.Next() {
		var doc []byte
		if err = rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		m, err := decodeMiracle(doc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListCountries возвращает отсортированный список стран без повторов.
func (s *Storage) ListCountries(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "storage.ListCountries", `SELECT DISTINCT country FROM miracles ORDER BY country`)
}

// ListCenturies возвращает отсортированный список веков без повторов.
func (s *Storage) ListCenturies(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "storage.ListCenturies", `SELECT DISTINCT century FROM miracles ORDER BY century`)
}

// Stats считает агрегаты по каталогу одним запросом.
func (s *Storage) Stats(ctx context.Context) (models.Stats, error) {
	const op = "storage.Stats"
	select {
	case <-ctx.Done():
		return models.Stats{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COUNT(*),
			         COUNT(*) FILTER (WHERE status = $1),
			         COUNT(*) FILTER (WHERE status = $2),
			         COUNT(DISTINCT country)
			  FROM miracles`
	var st models.Stats
	if err := s.DB.QueryRowContext(ctx, query, models.StatusRecognized, models.StatusInvestigating).
		Scan(&st.Total, &st.Recognized, &st.Investigating, &st.Countries); err != nil {
		return models.Stats{}, fmt.Errorf("%s: %w", op, err)
	}
	return st, nil
}

func (s *Storage) distinct(ctx context.Context, op, query string) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]string, 0)
	for rows.Next() {
		var v string
		if err = rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// buildListQuery собирает SELECT с условиями только для заданных полей фильтра.
func buildListQuery(f models.MiracleFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, strings.Replace(cond, "?", "$"+strconv.Itoa(len(args)), 1))
	}
	if f.Status != "" {
		add("status = ?", f.Status)
	}
	if f.Country != "" {
		add("country = ?", f.Country)
	}
	if f.Century != "" {
		add("century = ?", f.Century)
	}
	if f.Search != "" {
		add(`name ILIKE ? ESCAPE '\'`, "%"+escapeLike(f.Search)+"%")
	}

	limit := f.Limit
	if limit <= 0 || limit > models.MaxListLimit {
		limit = models.MaxListLimit
	}

	var b strings.Builder
	b.WriteString("SELECT doc FROM miracles")
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}
	args = append(args, limit)
	b.WriteString(" ORDER BY created_at, id LIMIT $" + strconv.Itoa(len(args)))
	return b.String(), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func decodeMiracle(doc []byte) (*models.Miracle, error) {
	var m models.Miracle
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, fmt.Errorf("decode miracle document: %w", err)
	}
	return &m, nil
}

func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
