package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"sales-crm-backend/internal/config"
	"sales-crm-backend/internal/database"
	"sales-crm-backend/internal/database/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed data structures matching the YAML layout. Contacts, enquiries and
// reminders nest under their parent so the file carries no IDs.
type ContactSeed struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email,omitempty"`
	Phone     string `yaml:"phone,omitempty"`
	Position  string `yaml:"position,omitempty"`
	IsPrimary bool   `yaml:"is_primary,omitempty"`
	Notes     string `yaml:"notes,omitempty"`
}

type ReminderSeed struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	DueInDays   int    `yaml:"due_in_days"`
	Completed   bool   `yaml:"completed,omitempty"`
}

type EnquirySeed struct {
	Title           string         `yaml:"title"`
	ContactEmail    string         `yaml:"contact_email,omitempty"`
	Status          string         `yaml:"status,omitempty"`
	ProductInterest string         `yaml:"product_interest,omitempty"`
	EstimatedValue  *float64       `yaml:"estimated_value,omitempty"`
	DaysAgo         int            `yaml:"days_ago,omitempty"`
	FollowUpInDays  *int           `yaml:"follow_up_in_days,omitempty"`
	Notes           string         `yaml:"notes,omitempty"`
	Owner           string         `yaml:"owner,omitempty"`
	Reminders       []ReminderSeed `yaml:"reminders,omitempty"`
}

type CompanySeed struct {
	Name      string        `yaml:"name"`
	Industry  string        `yaml:"industry,omitempty"`
	Address   string        `yaml:"address,omitempty"`
	Website   string        `yaml:"website,omitempty"`
	Notes     string        `yaml:"notes,omitempty"`
	Owner     string        `yaml:"owner,omitempty"`
	Contacts  []ContactSeed `yaml:"contacts,omitempty"`
	Enquiries []EnquirySeed `yaml:"enquiries,omitempty"`
}

type SeedFile struct {
	Companies []CompanySeed `yaml:"companies"`
}

func main() {
	var (
		seedPath = flag.String("file", "scripts/demo_data.yaml", "path to the YAML seed file")
		reset    = flag.Bool("reset", false, "delete existing CRM data before seeding")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{LogLevel: logger.Warn})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	raw, err := os.ReadFile(*seedPath)
	if err != nil {
		log.Fatalf("Failed to read seed file %s: %v", *seedPath, err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	if *reset {
		if err := resetData(db); err != nil {
			log.Fatalf("Failed to reset existing data: %v", err)
		}
		fmt.Println("Existing CRM data removed")
	}

	stats, err := load(db, &seed)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	fmt.Printf("Seeded %d companies, %d contacts, %d enquiries, %d reminders\n",
		stats.companies, stats.contacts, stats.enquiries, stats.reminders)
}

type seedStats struct {
	companies int
	contacts  int
	enquiries int
	reminders int
}

// resetData removes all CRM rows. Deleting companies cascades to contacts,
// enquiries, drafts and reminders through the schema.
func resetData(db *gorm.DB) error {
	return db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Company{}).Error
}

func load(db *gorm.DB, seed *SeedFile) (*seedStats, error) {
	stats := &seedStats{}
	now := time.Now().UTC()

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, companySeed := range seed.Companies {
			company := &models.Company{
				Name:     companySeed.Name,
				Industry: companySeed.Industry,
				Address:  companySeed.Address,
				Website:  companySeed.Website,
				Notes:    companySeed.Notes,
				Owner:    companySeed.Owner,
			}
			if err := tx.Create(company).Error; err != nil {
				return fmt.Errorf("create company %s: %w", companySeed.Name, err)
			}
			stats.companies++

			contactsByEmail := make(map[string]*models.Contact)
			for _, contactSeed := range companySeed.Contacts {
				contact := &models.Contact{
					CompanyID: company.ID,
					FirstName: contactSeed.FirstName,
					LastName:  contactSeed.LastName,
					Email:     contactSeed.Email,
					Phone:     contactSeed.Phone,
					Position:  contactSeed.Position,
					IsPrimary: contactSeed.IsPrimary,
					Notes:     contactSeed.Notes,
				}
				if err := tx.Create(contact).Error; err != nil {
					return fmt.Errorf("create contact %s for %s: %w", contact.FullName(), companySeed.Name, err)
				}
				stats.contacts++
				if contact.Email != "" {
					contactsByEmail[contact.Email] = contact
				}
			}

			for _, enquirySeed := range companySeed.Enquiries {
				status := models.EnquiryStatus(enquirySeed.Status)
				if enquirySeed.Status == "" {
					status = models.EnquiryStatusNew
				}
				if !status.IsValid() {
					return fmt.Errorf("enquiry %q: unknown status %q", enquirySeed.Title, enquirySeed.Status)
				}

				enquiry := &models.Enquiry{
					CompanyID:       company.ID,
					Title:           enquirySeed.Title,
					Status:          status,
					ProductInterest: enquirySeed.ProductInterest,
					EstimatedValue:  enquirySeed.EstimatedValue,
					EnquiryDate:     now.AddDate(0, 0, -enquirySeed.DaysAgo),
					Notes:           enquirySeed.Notes,
					Owner:           enquirySeed.Owner,
				}
				if enquirySeed.FollowUpInDays != nil {
					followUp := now.AddDate(0, 0, *enquirySeed.FollowUpInDays)
					enquiry.FollowUpDate = &followUp
				}
				if enquirySeed.ContactEmail != "" {
					contact, ok := contactsByEmail[enquirySeed.ContactEmail]
					if !ok {
						return fmt.Errorf("enquiry %q references unknown contact %s", enquirySeed.Title, enquirySeed.ContactEmail)
					}
					enquiry.ContactID = &contact.ID
				}
				if err := tx.Create(enquiry).Error; err != nil {
					return fmt.Errorf("create enquiry %q: %w", enquirySeed.Title, err)
				}
				stats.enquiries++

				for _, reminderSeed := range enquirySeed.Reminders {
					reminder := &models.Reminder{
						EnquiryID:   enquiry.ID,
						Title:       reminderSeed.Title,
						Description: reminderSeed.Description,
						DueAt:       now.AddDate(0, 0, reminderSeed.DueInDays),
						Completed:   reminderSeed.Completed,
					}
					if err := tx.Create(reminder).Error; err != nil {
						return fmt.Errorf("create reminder %q: %w", reminderSeed.Title, err)
					}
					stats.reminders++
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
