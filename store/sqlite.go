package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"jamjam-resort-api/models"
)

// documentRow is one record of a collection table: the key plus the JSON body.
type documentRow struct {
	ID        string `gorm:"primaryKey;size:191"`
	Body      string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SQLite keeps every collection in its own table of a local SQLite database. It backs
// development runs and tests; index queries and scans are evaluated in process.
type SQLite struct {
	db     *gorm.DB
	prefix string
	log    logrus.FieldLogger
}

var _ Store = (*SQLite)(nil)

// OpenSQLite opens (creating if needed) the database file at path.
func OpenSQLite(path, prefix string, log logrus.FieldLogger) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	return &SQLite{db: db, prefix: prefix, log: log}, nil
}

// Close releases the underlying connection pool.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *SQLite) table(ctx context.Context, c Collection) *gorm.DB {
	return s.db.WithContext(ctx).Table(s.prefix + c.Name)
}

func encodeBody(doc models.Document) (string, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeRow(row documentRow) (models.Document, error) {
	doc := models.Document{}
	if err := json.Unmarshal([]byte(row.Body), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *SQLite) Get(ctx context.Context, c Collection, key string) (models.Document, error) {
	var row documentRow
	err := s.table(ctx, c).Where("id = ?", key).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, unavailable("get", c, err)
	}
	doc, err := decodeRow(row)
	if err != nil {
		return nil, unavailable("get", c, err)
	}
	return doc, nil
}

func (s *SQLite) Put(ctx context.Context, c Collection, doc models.Document) error {
	key, _ := doc[c.Key].(string)
	if key == "" {
		return fmt.Errorf("%w: %s record has no %s", models.ErrValidation, c.Name, c.Key)
	}
	body, err := encodeBody(doc)
	if err != nil {
		return fmt.Errorf("%w: encode %s record: %v", models.ErrValidation, c.Name, err)
	}
	row := documentRow{ID: key, Body: body}
	err = s.table(ctx, c).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return unavailable("put", c, err)
	}
	return nil
}

func (s *SQLite) Update(ctx context.Context, c Collection, key string, u *Update) (models.Document, error) {
	if u.Len() == 0 {
		return s.Get(ctx, c, key)
	}
	var updated models.Document
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row documentRow
		if err := tx.Table(s.prefix+c.Name).Where("id = ?", key).Take(&row).Error; err != nil {
			return err
		}
		current, err := decodeRow(row)
		if err != nil {
			return err
		}
		updated = u.Apply(current)
		body, err := encodeBody(updated)
		if err != nil {
			return err
		}
		return tx.Table(s.prefix+c.Name).Where("id = ?", key).
			Updates(map[string]interface{}{"body": body, "updated_at": time.Now()}).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, unavailable("update", c, err)
	}
	return updated, nil
}

func (s *SQLite) Delete(ctx context.Context, c Collection, key string) error {
	if err := s.table(ctx, c).Where("id = ?", key).Delete(&documentRow{}).Error; err != nil {
		return unavailable("delete", c, err)
	}
	return nil
}

func (s *SQLite) all(ctx context.Context, c Collection) ([]models.Document, error) {
	var rows []documentRow
	if err := s.table(ctx, c).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	docs := make([]models.Document, 0, len(rows))
	for _, row := range rows {
		doc, err := decodeRow(row)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *SQLite) Query(ctx context.Context, c Collection, q Query) ([]models.Document, error) {
	idx, ok := c.Index(q.Index)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no index %q", models.ErrValidation, c.Name, q.Index)
	}
	docs, err := s.all(ctx, c)
	if err != nil {
		return nil, unavailable("query", c, err)
	}

	out := []models.Document{}
	for _, doc := range docs {
		if doc.String(idx.HashKey) != q.Value {
			continue
		}
		if idx.RangeKey != "" {
			// Records without the range attribute are absent from the index.
			rv, ok := doc[idx.RangeKey].(string)
			if !ok || (q.From != "" && rv < q.From) || (q.To != "" && rv > q.To) {
				continue
			}
		}
		out = append(out, doc)
	}
	if idx.RangeKey != "" {
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].String(idx.RangeKey), out[j].String(idx.RangeKey)
			if q.Descending {
				return a > b
			}
			return a < b
		})
	}
	return out, nil
}

func (s *SQLite) Scan(ctx context.Context, c Collection, filters ...Filter) ([]models.Document, error) {
	docs, err := s.all(ctx, c)
	if err != nil {
		return nil, unavailable("scan", c, err)
	}
	if len(filters) == 0 {
		return docs, nil
	}
	out := []models.Document{}
	for _, doc := range docs {
		if matches(doc, filters) {
			out = append(out, doc)
		}
	}
	return out, nil
}

// Provision migrates a table for every collection that does not have one yet.
func (s *SQLite) Provision(ctx context.Context, colls ...Collection) ([]Collection, error) {
	var created []Collection
	for _, c := range colls {
		name := s.prefix + c.Name
		if s.db.Migrator().HasTable(name) {
			continue
		}
		if err := s.db.WithContext(ctx).Table(name).AutoMigrate(&documentRow{}); err != nil {
			return created, unavailable("migrate", c, err)
		}
		s.log.WithFields(logrus.Fields{"op": "provision", "table": name}).Info("📦 created table")
		created = append(created, c)
	}
	return created, nil
}
