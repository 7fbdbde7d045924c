package migrate

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
)

// Migration is a single versioned schema change. Versions sort lexically,
// so use a timestamp-like prefix such as "20240101000001".
type Migration struct {
	Version string
	Name    string
	Up      func(*gorm.DB) error
	Down    func(*gorm.DB) error
}

// MigrationRecord is a row of the schema_migrations table.
type MigrationRecord struct {
	Version   string    `gorm:"primaryKey;size:32"`
	Name      string    `gorm:"not null;size:255"`
	AppliedAt time.Time `gorm:"not null"`
}

func (MigrationRecord) TableName() string {
	return "schema_migrations"
}

// MigrationStatus pairs a known migration with its applied state.
type MigrationStatus struct {
	Version   string
	Name      string
	Applied   bool
	AppliedAt *time.Time
}

// ErrNoAppliedMigrations is returned by Down when there is nothing to roll back.
var ErrNoAppliedMigrations = errors.New("no migrations have been applied")

type Migrator struct {
	db         *gorm.DB
	migrations []*Migration
}

func NewMigrator(db *gorm.DB, migrations ...*Migration) *Migrator {
	m := &Migrator{db: db}
	for _, mg := range migrations {
		m.Register(mg)
	}
	return m
}

func (m *Migrator) Register(migration *Migration) {
	m.migrations = append(m.migrations, migration)
	sort.SliceStable(m.migrations, func(i, j int) bool {
		return m.migrations[i].Version < m.migrations[j].Version
	})
}

func (m *Migrator) ensureVersionTable() error {
	return m.db.AutoMigrate(&MigrationRecord{})
}

func (m *Migrator) appliedRecords() (map[string]MigrationRecord, error) {
	if err := m.ensureVersionTable(); err != nil {
		return nil, fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	var records []MigrationRecord
	if err := m.db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get applied migrations: %w", err)
	}

	applied := make(map[string]MigrationRecord, len(records))
	for _, record := range records {
		applied[record.Version] = record
	}
	return applied, nil
}

// Up applies every pending migration, each one in its own transaction.
// It returns the migrations that were applied.
func (m *Migrator) Up() ([]*Migration, error) {
	applied, err := m.appliedRecords()
	if err != nil {
		return nil, err
	}

	var done []*Migration
	for _, mg := range m.migrations {
		if _, ok := applied[mg.Version]; ok {
			continue
		}

		err := m.db.Transaction(func(tx *gorm.DB) error {
			if err := mg.Up(tx); err != nil {
				return fmt.Errorf("failed to apply migration %s: %w", mg.Name, err)
			}
			record := MigrationRecord{
				Version:   mg.Version,
				Name:      mg.Name,
				AppliedAt: time.Now().UTC(),
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to record migration %s: %w", mg.Name, err)
			}
			return nil
		})
		if err != nil {
			return done, err
		}
		done = append(done, mg)
	}
	return done, nil
}

// Down rolls back the most recently applied migration.
func (m *Migrator) Down() (*Migration, error) {
	if err := m.ensureVersionTable(); err != nil {
		return nil, err
	}

	var last MigrationRecord
	err := m.db.Order("applied_at DESC").Order("version DESC").First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoAppliedMigrations
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last applied migration: %w", err)
	}

	var target *Migration
	for _, mg := range m.migrations {
		if mg.Version == last.Version {
			target = mg
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("applied migration %s (%s) is not registered", last.Name, last.Version)
	}

	err = m.db.Transaction(func(tx *gorm.DB) error {
		if target.Down != nil {
			if err := target.Down(tx); err != nil {
				return fmt.Errorf("failed to roll back migration %s: %w", target.Name, err)
			}
		}
		return tx.Delete(&last).Error
	})
	if err != nil {
		return nil, err
	}
	return target, nil
}

// Status lists registered migrations in version order with their applied state.
func (m *Migrator) Status() ([]MigrationStatus, error) {
	applied, err := m.appliedRecords()
	if err != nil {
		return nil, err
	}

	statuses := make([]MigrationStatus, 0, len(m.migrations))
	for _, mg := range m.migrations {
		st := MigrationStatus{Version: mg.Version, Name: mg.Name}
		if rec, ok := applied[mg.Version]; ok {
			at := rec.AppliedAt
			st.Applied = true
			st.AppliedAt = &at
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}

// History returns applied migrations, newest first.
func (m *Migrator) History() ([]MigrationRecord, error) {
	if err := m.ensureVersionTable(); err != nil {
		return nil, err
	}
	var records []MigrationRecord
	if err := m.db.Order("applied_at DESC").Order("version DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get migration history: %w", err)
	}
	return records, nil
}
