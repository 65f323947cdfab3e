package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"skyline/infras/otel"
	"skyline/infras/postgres"
	"skyline/shared/constant"
	"skyline/shared/dto"
	"skyline/shared/logger"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
)

var ErrRequiredFilter = errors.New("required filter")

// Joiner is implemented by read models that pull columns from other tables. Their
// foreign fields carry table:"<other>" and column:"<name>" tags next to the db alias.
type Joiner interface {
	GetJoinQuery() string
}

type column struct {
	name  string
	table string
	alias string
}

func (c column) expr() string {
	if c.alias != "" {
		return fmt.Sprintf("%s.%s AS %s", c.table, c.name, c.alias)
	}

	return c.table + "." + c.name
}

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

// Repository is the table gateway embedded by the domain repositories. Reads use the
// read pool and writes the write pool.
type Repository[T any] struct {
	db      *postgres.Connection
	otel    otel.Otel
	table   string
	entity  string
	primary string
	columns []column
	join    string

	insertQuery string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	join := ""
	if joiner, ok := any(zero).(Joiner); ok {
		join = joiner.GetJoinQuery()
	}

	return Repository[T]{
		db:          dbConnection,
		otel:        otl,
		table:       tableName,
		entity:      entityName,
		primary:     primaryColumn,
		columns:     columns,
		join:        join,
		insertQuery: buildInsertQuery(tableName, insertColumns),
	}
}

func (repo *Repository[T]) scope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, op))
}

func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

// read prepares query on the read pool and hands the statement to fn.
func (repo *Repository[T]) read(ctx context.Context, query string, fn func(stmt *sqlx.NamedStmt) error) error {
	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	return fn(stmt)
}

func (repo *Repository[T]) insert(ctx context.Context, exec execer, model T) error {
	ctx, scope := repo.scope(ctx, "Insert")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, repo.insertQuery)

	if _, err := exec.NamedExecContext(ctx, repo.insertQuery, model); err != nil {
		return repo.fail(scope, "insert data", err)
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	return repo.insert(ctx, repo.db.Write, model)
}

// InsertTx inserts inside a transaction opened by a Transactor.
func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	return repo.insert(ctx, sqltx, model)
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.scope(ctx, "Exist")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return false, ErrRequiredFilter
	}

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	exist := false

	if err := repo.read(ctx, query, func(stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &exist, args)
	}); err != nil {
		return false, repo.fail(scope, "check exist data", err)
	}

	return exist, nil
}

// Get returns the zero T when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	query := compact("SELECT", repo.selectList(columns...), "FROM", repo.table, repo.join, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var model T

	err := repo.read(ctx, query, func(stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &model, args)
	})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return model, nil
	case err != nil:
		return model, repo.fail(scope, "get data", err)
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.scope(ctx, "GetAll")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	query := compact("SELECT", repo.selectList(columns...), "FROM", repo.table, repo.join, where,
		repo.ordering(params), pagination(params, args))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []T{}

	if err := repo.read(ctx, query, func(stmt *sqlx.NamedStmt) error {
		return stmt.SelectContext(ctx, &models, args)
	}); err != nil {
		return models, repo.fail(scope, "get all data", err)
	}

	return models, nil
}

func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "Update")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return ErrRequiredFilter
	}

	query := compact("UPDATE", repo.table, "SET", setClause(mod), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	maps.Copy(args, mod)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, args); err != nil {
		return repo.fail(scope, "update data", err)
	}

	return nil
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "Delete")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return ErrRequiredFilter
	}

	query := compact("DELETE FROM", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, args); err != nil {
		return repo.fail(scope, "delete data", err)
	}

	return nil
}

func (repo *Repository[T]) BuildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return "WHERE " + where, args
}

// selectList renders the model columns, restricted to only when it is given.
func (repo *Repository[T]) selectList(only ...string) string {
	exprs := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		exprs = append(exprs, col.expr())
	}

	return strings.Join(exprs, ", ")
}

// ordering appends the primary key so pages stay stable when sort values tie.
func (repo *Repository[T]) ordering(params dto.QueryParams) string {
	if params.SortBy == "" || params.SortDir == "" {
		return ""
	}

	return fmt.Sprintf("ORDER BY %s %s, %s.%s", params.SortBy, params.SortDir, repo.table, repo.primary)
}

func pagination(params dto.QueryParams, args map[string]any) string {
	if params.Limit <= 0 {
		return ""
	}

	args["limit"] = params.Limit

	if params.Page <= 0 {
		return "LIMIT :limit"
	}

	args["offset"] = (params.Page - 1) * params.Limit

	return "LIMIT :limit OFFSET :offset"
}

func buildInsertQuery(table string, columns []string) string {
	placeholders := make([]string, len(columns))
	for i, col := range columns {
		placeholders[i] = ":" + col
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
}

// setClause renders columns in name order so an update always yields the same SQL.
func setClause(mod map[string]any) string {
	keys := slices.Sorted(maps.Keys(mod))

	assignments := make([]string, len(keys))
	for i, col := range keys {
		assignments[i] = col + " = :" + col
	}

	return strings.Join(assignments, ", ")
}

func compact(parts ...string) string {
	return strings.Join(slices.DeleteFunc(parts, func(part string) bool { return part == "" }), " ")
}

// getColumns walks the db tags of a model, descending into embedded structs. Columns
// owned by another table are selected but never inserted.
func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			cols, inserts := getColumns(table, field.Type)
			columns = append(columns, cols...)
			insertColumns = append(insertColumns, inserts...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		owner := field.Tag.Get("table")
		if owner == "" {
			owner = table
		}

		if owner == table {
			insertColumns = append(insertColumns, dbTag)
		}

		if name := field.Tag.Get("column"); name != "" {
			columns = append(columns, column{name: name, table: owner, alias: dbTag})
		} else {
			columns = append(columns, column{name: dbTag, table: owner})
		}
	}

	return columns, insertColumns
}
