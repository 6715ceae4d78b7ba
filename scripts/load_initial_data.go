package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"bugbounty-platform-backend/internal/config"
	"bugbounty-platform-backend/internal/database"
	"bugbounty-platform-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type HackerData struct {
	Username  string `yaml:"username"`
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Country   string `yaml:"country,omitempty"`
}

type CompanyData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Website  string `yaml:"website,omitempty"`
}

type AssetData struct {
	Type  string   `yaml:"type"`
	Names []string `yaml:"names"`
}

type BucketData struct {
	Level  string      `yaml:"level"`
	Price  float64     `yaml:"price"`
	Assets []AssetData `yaml:"assets,omitempty"`
}

type ProgramData struct {
	CompanyEmail string       `yaml:"company_email"`
	FromDate     string       `yaml:"from_date"`
	ToDate       string       `yaml:"to_date"`
	Policy       string       `yaml:"policy"`
	Notes        string       `yaml:"notes,omitempty"`
	InScope      []string     `yaml:"in_scope,omitempty"`
	OutOfScope   []string     `yaml:"out_of_scope,omitempty"`
	Prohibits    []string     `yaml:"prohibits,omitempty"`
	Buckets      []BucketData `yaml:"buckets,omitempty"`
}

// File structures
type HackersFile struct {
	Hackers []HackerData `yaml:"hackers"`
}

type CompaniesFile struct {
	Companies []CompanyData `yaml:"companies"`
}

type ProgramsFile struct {
	Programs []ProgramData `yaml:"programs"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	hackers, err := loadHackers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load hackers: %w", err)
	}

	companies, err := loadCompanies(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load companies: %w", err)
	}

	programs, err := loadPrograms(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load programs: %w", err)
	}

	// Create hackers
	hackerCreated := 0
	for _, hackerData := range hackers {
		created, err := createHacker(db, hackerData)
		if err != nil {
			return fmt.Errorf("failed to create hacker %s: %w", hackerData.Username, err)
		}
		if created {
			hackerCreated++
		}
	}
	log.Printf("Hackers: %d created, %d total", hackerCreated, len(hackers))

	// Create companies, keyed by email for program ownership below
	companyMap := make(map[string]*models.Company)
	companyCreated := 0
	for _, companyData := range companies {
		company, created, err := createCompany(db, companyData)
		if err != nil {
			return fmt.Errorf("failed to create company %s: %w", companyData.Name, err)
		}
		companyMap[companyData.Email] = company
		if created {
			companyCreated++
		}
	}
	log.Printf("Companies: %d created, %d total", companyCreated, len(companies))

	// Create programs
	programCreated := 0
	for _, programData := range programs {
		created, err := createProgram(db, programData, companyMap)
		if err != nil {
			return fmt.Errorf("failed to create program for %s: %w", programData.CompanyEmail, err)
		}
		if created {
			programCreated++
		}
	}
	log.Printf("Programs: %d created, %d total", programCreated, len(programs))

	return nil
}

func loadHackers(dataDir string) ([]HackerData, error) {
	var file HackersFile
	if err := readYAML(filepath.Join(dataDir, "hackers.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Hackers, nil
}

func loadCompanies(dataDir string) ([]CompanyData, error) {
	var file CompaniesFile
	if err := readYAML(filepath.Join(dataDir, "companies.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Companies, nil
}

func loadPrograms(dataDir string) ([]ProgramData, error) {
	var file ProgramsFile
	if err := readYAML(filepath.Join(dataDir, "programs.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Programs, nil
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// createHacker creates a hacker account unless the username already exists
func createHacker(db *gorm.DB, data HackerData) (bool, error) {
	var existing models.User
	err := db.Where("username = ?", data.Username).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	user := &models.User{
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: string(hash),
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Country:      data.Country,
		Activated:    true,
	}
	return true, db.Create(user).Error
}

// createCompany creates a company account unless the email already exists
func createCompany(db *gorm.DB, data CompanyData) (*models.Company, bool, error) {
	var existing models.Company
	err := db.Where("email = ?", data.Email).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, err
	}
	company := &models.Company{
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: string(hash),
		Website:      data.Website,
		Approved:     true,
	}
	if err := db.Create(company).Error; err != nil {
		return nil, false, err
	}
	return company, true, nil
}

// createProgram creates a company's program with its full aggregate graph
// unless the company already has one
func createProgram(db *gorm.DB, data ProgramData, companyMap map[string]*models.Company) (bool, error) {
	company, ok := companyMap[data.CompanyEmail]
	if !ok {
		return false, fmt.Errorf("unknown company email %s", data.CompanyEmail)
	}

	var count int64
	if err := db.Model(&models.Program{}).Where("company_id = ?", company.ID).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	fromDate, err := time.Parse("2006-01-02", data.FromDate)
	if err != nil {
		return false, fmt.Errorf("invalid from_date %s: %w", data.FromDate, err)
	}
	toDate, err := time.Parse("2006-01-02", data.ToDate)
	if err != nil {
		return false, fmt.Errorf("invalid to_date %s: %w", data.ToDate, err)
	}

	program := &models.Program{
		CompanyID:  company.ID,
		FromDate:   fromDate,
		ToDate:     toDate,
		Policy:     data.Policy,
		Notes:      data.Notes,
		InScope:    data.InScope,
		OutOfScope: data.OutOfScope,
		Asset:      &models.ProgramAsset{},
	}
	for _, rule := range data.Prohibits {
		program.Prohibits = append(program.Prohibits, models.ProhibitedAction{Rule: rule})
	}

	// Fill all four severity tiers; tiers absent from the YAML stay empty
	byLevel := make(map[models.SeverityLevel]BucketData)
	for _, bucketData := range data.Buckets {
		byLevel[models.SeverityLevel(bucketData.Level)] = bucketData
	}
	for _, level := range models.SeverityLevels {
		bucket := models.SeverityBucket{Level: level}
		if bucketData, ok := byLevel[level]; ok {
			bucket.Price = bucketData.Price
			for _, assetData := range bucketData.Assets {
				bucket.Assets = append(bucket.Assets, models.Asset{
					Type:  assetData.Type,
					Names: assetData.Names,
				})
			}
		}
		program.Asset.Buckets = append(program.Asset.Buckets, bucket)
	}

	return true, db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(program).Error
	})
}
