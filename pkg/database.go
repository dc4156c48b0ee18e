package grisu

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	sqlx "github.com/jmoiron/sqlx" //make alias name the package to sqlx
)

func ConnectToDatabase(user string, pass string, host string, dbname string) (*sqlx.DB, error) {
	port := "3306"
	dbURI := fmt.Sprintf("%s:%s@(%s:%s)/%s?parseTime=true", user, pass, host, port, dbname)
	db, err := sqlx.Connect("mysql", dbURI)
	return db, err
}

// RunCatalogEntry is one row of the RunCatalog table keeping track of
// converted CORSIKA runs.
type RunCatalogEntry struct {
	RunNumber  int     `db:"RunNumber"`
	PrimaryID  int     `db:"PrimaryID"`
	KascadeID  int     `db:"KascadeID"`
	EnergyMin  float64 `db:"EnergyMin"`
	EnergyMax  float64 `db:"EnergyMax"`
	OutputFile string  `db:"OutputFile"`
}

// RegisterRun inserts the run metadata of a converted file into the
// catalog. Primaries without a kascade equivalent are stored as -1.
func RegisterRun(db *sqlx.DB, buf RunHeaderBuffer, outputFile string) error {
	particles := NewParticleMap()
	kascadeID, ok := particles.Lookup(buf.PrimaryID())
	if !ok {
		kascadeID = -1
	}
	entry := RunCatalogEntry{
		RunNumber:  buf.RunNumber(),
		PrimaryID:  buf.PrimaryID(),
		KascadeID:  kascadeID,
		EnergyMin:  buf.EnergyMin(),
		EnergyMax:  buf.EnergyMax(),
		OutputFile: outputFile,
	}

	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Registering run %d in catalog", entry.RunNumber)
		logger.Info(message, "database")
	}

	query := `INSERT INTO RunCatalog
		(RunNumber, PrimaryID, KascadeID, EnergyMin, EnergyMax, OutputFile)
		VALUES (:RunNumber, :PrimaryID, :KascadeID, :EnergyMin, :EnergyMax, :OutputFile)`
	if _, err := db.NamedExec(query, entry); err != nil {
		errMessage := fmt.Errorf("error registering run in database: %w", err)
		logger.Error(errMessage.Error())
		return errMessage
	}
	return nil
}

// GetRunInfo reads the catalog entry of a previously converted run.
func GetRunInfo(db *sqlx.DB, runNumber int) (RunCatalogEntry, error) {
	query := `SELECT RunNumber, PrimaryID, KascadeID, EnergyMin, EnergyMax, OutputFile
		FROM RunCatalog WHERE RunNumber = %d`
	query = fmt.Sprintf(query, runNumber)

	if configuration.Verbosity > 2 {
		message := fmt.Sprintf("Query: %s", query)
		logger.Info(message, "database")
	}

	rows, err := db.Queryx(query)
	if err != nil {
		errMessage := fmt.Errorf("error querying database: %w", err)
		return RunCatalogEntry{}, errMessage
	}
	defer rows.Close()

	if !rows.Next() {
		return RunCatalogEntry{}, fmt.Errorf("run %d not found in catalog", runNumber)
	}
	result := RunCatalogEntry{}
	if err := rows.StructScan(&result); err != nil {
		errMessage := fmt.Errorf("error scanning DB row: %w", err)
		return RunCatalogEntry{}, errMessage
	}
	return result, nil
}
