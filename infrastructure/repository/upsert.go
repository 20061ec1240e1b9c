package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-sync-api/infrastructure/database/postgres"
)

// ColumnVariant indica qual nome histórico de uma coluna existe na tabela
type ColumnVariant int

const (
	CurrentColumn ColumnVariant = iota
	LegacyColumn
)

func (v ColumnVariant) String() string {
	if v == LegacyColumn {
		return "legacy"
	}

	return "current"
}

// ColumnAlias descreve uma coluna que mudou de nome ao longo das migrações
type ColumnAlias struct {
	Current string
	Legacy  string
}

func (a ColumnAlias) Name(v ColumnVariant) string {
	if v == LegacyColumn {
		return a.Legacy
	}

	return a.Current
}

// UpsertStatement usa nomes lógicos de coluna. Nomes presentes em Aliases são
// traduzidos para o nome físico antes de montar o SQL.
type UpsertStatement struct {
	Table       string
	NaturalKey  []string
	Values      map[string]any
	Aliases     map[string]ColumnAlias
	TouchColumn string
}

type variantKey struct {
	table   string
	current string
}

// Upserter monta INSERT ... ON CONFLICT ... DO UPDATE e guarda, por tabela,
// qual variante de cada coluna renomeada existe.
type Upserter struct {
	db       postgres.Queryer
	mu       sync.RWMutex
	variants map[variantKey]ColumnVariant
}

func NewUpserter(db postgres.Queryer) *Upserter {
	return &Upserter{
		db:       db,
		variants: make(map[variantKey]ColumnVariant),
	}
}

// ResolveColumn consulta information_schema uma única vez por (tabela, coluna).
// Falhas não são guardadas e a próxima chamada tenta de novo.
func (u *Upserter) ResolveColumn(ctx context.Context, table string, alias ColumnAlias) (string, error) {
	key := variantKey{table: table, current: alias.Current}

	u.mu.RLock()
	variant, ok := u.variants[key]
	u.mu.RUnlock()
	if ok {
		return alias.Name(variant), nil
	}

	query, args, err := squirrel.
		Select("column_name").
		From("information_schema.columns").
		Where("table_schema = current_schema()").
		Where(squirrel.Eq{"table_name": table, "column_name": []string{alias.Current, alias.Legacy}}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", newPersistenceError("resolve column", table, err)
	}

	rows, err := u.db.QueryContext(ctx, query, args...)
	if err != nil {
		return "", newPersistenceError("resolve column", table, err)
	}
	defer rows.Close()

	variant = LegacyColumn
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return "", newPersistenceError("resolve column", table, err)
		}
		if name == alias.Current {
			variant = CurrentColumn
		}
	}

	if err := rows.Err(); err != nil {
		return "", newPersistenceError("resolve column", table, err)
	}

	u.mu.Lock()
	u.variants[key] = variant
	u.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"table":   table,
		"column":  alias.Name(variant),
		"variant": variant.String(),
	}).Debug("repository: column variant resolved")

	return alias.Name(variant), nil
}

// Upsert insere a linha ou, em conflito na chave natural, sobrescreve todas as
// colunas que não fazem parte da chave. Retorna o id da linha.
func (u *Upserter) Upsert(ctx context.Context, stmt UpsertStatement) (int64, error) {
	query, args, err := u.build(ctx, stmt)
	if err != nil {
		return 0, err
	}

	var id int64
	if err := u.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, newPersistenceError("upsert", stmt.Table, err)
	}

	return id, nil
}

func (u *Upserter) build(ctx context.Context, stmt UpsertStatement) (string, []any, error) {
	if stmt.Table == "" || len(stmt.NaturalKey) == 0 || len(stmt.Values) == 0 {
		return "", nil, newPersistenceError("upsert", stmt.Table, fmt.Errorf("table, natural key and values are required"))
	}

	physical := make(map[string]string, len(stmt.Values))
	for logical := range stmt.Values {
		name := logical
		if alias, ok := stmt.Aliases[logical]; ok {
			resolved, err := u.ResolveColumn(ctx, stmt.Table, alias)
			if err != nil {
				return "", nil, err
			}
			name = resolved
		}
		physical[logical] = name
	}

	keyColumns := make([]string, 0, len(stmt.NaturalKey))
	isKey := make(map[string]bool, len(stmt.NaturalKey))
	for _, logical := range stmt.NaturalKey {
		name, ok := physical[logical]
		if !ok {
			return "", nil, newPersistenceError("upsert", stmt.Table, fmt.Errorf("natural key column %q has no value", logical))
		}
		keyColumns = append(keyColumns, name)
		isKey[logical] = true
	}

	logicalColumns := make([]string, 0, len(stmt.Values))
	for logical := range stmt.Values {
		logicalColumns = append(logicalColumns, logical)
	}
	sort.Slice(logicalColumns, func(i, j int) bool {
		return physical[logicalColumns[i]] < physical[logicalColumns[j]]
	})

	columns := make([]string, 0, len(logicalColumns))
	values := make([]any, 0, len(logicalColumns))
	updates := make([]string, 0, len(logicalColumns))
	for _, logical := range logicalColumns {
		name := physical[logical]
		columns = append(columns, name)
		values = append(values, stmt.Values[logical])
		if !isKey[logical] {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", name, name))
		}
	}

	if stmt.TouchColumn != "" {
		updates = append(updates, fmt.Sprintf("%s = NOW()", stmt.TouchColumn))
	}

	// DO NOTHING não devolve a linha existente no RETURNING
	if len(updates) == 0 {
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", keyColumns[0], keyColumns[0]))
	}

	query, args, err := squirrel.
		Insert(stmt.Table).
		Columns(columns...).
		Values(values...).
		Suffix(fmt.Sprintf(
			"ON CONFLICT (%s) DO UPDATE SET %s RETURNING id",
			strings.Join(keyColumns, ", "),
			strings.Join(updates, ", "),
		)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", nil, newPersistenceError("upsert", stmt.Table, err)
	}

	return query, args, nil
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
