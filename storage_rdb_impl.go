package hanfish

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/kotaroooo0/hanfish/dictionary"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

func NewDBClient(dbConfig *DBConfig) (*sqlx.DB, error) {
	switch dbConfig.Driver {
	case DriverSQLite:
		db, err := sqlx.Open(DriverSQLite, dbConfig.DB)
		if err != nil {
			return nil, err
		}
		// an in-memory database lives as long as its connection
		db.SetMaxOpenConns(1)
		return db, nil
	case DriverMySQL, "":
		return sqlx.Open(
			DriverMySQL,
			fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbConfig.User, dbConfig.Password, dbConfig.Addr, dbConfig.Port, dbConfig.DB),
		)
	}
	return nil, fmt.Errorf("unsupported driver %q", dbConfig.Driver)
}

type DBConfig struct {
	Driver   string
	User     string
	Password string
	Addr     string
	Port     string
	DB       string // database name, or the file path for sqlite
}

func NewDBConfig(user, password, addr, port, db string) *DBConfig {
	return &DBConfig{
		Driver:   DriverMySQL,
		User:     user,
		Password: password,
		Addr:     addr,
		Port:     port,
		DB:       db,
	}
}

// NewSQLiteDBConfig points at a sqlite file, or ":memory:".
func NewSQLiteDBConfig(path string) *DBConfig {
	return &DBConfig{
		Driver: DriverSQLite,
		DB:     path,
	}
}

type UserWordStorageRdbImpl struct {
	DB *sqlx.DB
}

var _ UserWordStorage = (*UserWordStorageRdbImpl)(nil)

func NewUserWordStorageRdbImpl(db *sqlx.DB) *UserWordStorageRdbImpl {
	return &UserWordStorageRdbImpl{
		DB: db,
	}
}

// CreateTable creates the user_words table unless it exists.
func (s *UserWordStorageRdbImpl) CreateTable() error {
	ddl := `create table if not exists user_words (
		id integer primary key autoincrement,
		word varchar(255) not null unique
	)`
	if s.DB.DriverName() == DriverMySQL {
		ddl = `create table if not exists user_words (
		id bigint unsigned not null auto_increment primary key,
		word varchar(255) not null unique
	)`
	}
	_, err := s.DB.Exec(ddl)
	return err
}

func (s *UserWordStorageRdbImpl) GetUserWords() ([]string, error) {
	var words []string
	if err := s.DB.Select(&words, `select word from user_words order by id`); err != nil {
		return nil, err
	}
	return words, nil
}

func (s *UserWordStorageRdbImpl) AddUserWord(word string) error {
	w, err := dictionary.ParseUserWord(word)
	if err != nil {
		return err
	}
	_, err = s.DB.NamedExec(`insert into user_words (word) values (:word)`,
		map[string]interface{}{
			"word": w.String(),
		},
	)
	if err != nil && !isDuplicate(err) {
		return err
	}
	return nil
}

func (s *UserWordStorageRdbImpl) DeleteUserWord(word string) error {
	w, err := dictionary.ParseUserWord(word)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(s.DB.Rebind(`delete from user_words where word = ?`), w.String())
	return err
}

func isDuplicate(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}
