package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample accounts and spaces for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		_, db, err := initDB(cfg)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			for _, table := range []string{"spaces_exhebition", "spaces_parking", "spaces_rent", "users"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		hash, _ := bcrypt.GenerateFromPassword([]byte("admin"), cfg.Security.EffectiveBCryptCost())

		accounts := []struct {
			Username string
			Role     string
		}{
			{"admin", "admin"},
			{"manager", "manager"},
			{"viewer", "user"},
		}

		for _, a := range accounts {
			var exists int
			row := db.Raw("SELECT 1 FROM users WHERE username = ?", a.Username).Row()
			if err := row.Scan(&exists); err == nil {
				fmt.Printf("user %s already exists, skipping\n", a.Username)
				continue
			}

			if err := db.Exec("INSERT INTO users (username, password, role, created_at) VALUES (?, ?, ?, now())",
				a.Username, string(hash), a.Role).Error; err != nil {
				log.Fatalf("failed to insert user %s: %v", a.Username, err)
			}
			fmt.Printf("Seeded user: %s (%s)\n", a.Username, a.Role)
		}

		var adminID int64
		if err := db.Raw("SELECT id FROM users WHERE username = ?", "admin").Row().Scan(&adminID); err != nil {
			log.Fatalf("failed to lookup admin id: %v", err)
		}

		exhibitions := []struct {
			Building string
			Area     float64
			Height   float64
		}{
			{"Hall A", 1200, 8.5},
			{"Hall B", 950, 7.0},
		}
		for _, e := range exhibitions {
			var exists int
			if err := db.Raw("SELECT 1 FROM spaces_exhebition WHERE building_name = ?", e.Building).Row().Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec("INSERT INTO spaces_exhebition (building_name, area_sqm, ceiling_height, created_by_user_id, updated_by_user_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, now(), now())",
				e.Building, e.Area, e.Height, adminID, adminID).Error; err != nil {
				log.Fatalf("failed to insert exhibition space %s: %v", e.Building, err)
			}
			fmt.Printf("Seeded exhibition space: %s\n", e.Building)
		}

		parkings := []struct {
			Building string
			Seats    float64
		}{
			{"North Lot", 250},
			{"Underground Garage", 120},
		}
		for _, p := range parkings {
			var exists int
			if err := db.Raw("SELECT 1 FROM spaces_parking WHERE building_name = ?", p.Building).Row().Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec("INSERT INTO spaces_parking (building_name, number_of_seats, created_by_user_id, updated_by_user_id, created_at, updated_at) VALUES (?, ?, ?, ?, now(), now())",
				p.Building, p.Seats, adminID, adminID).Error; err != nil {
				log.Fatalf("failed to insert parking space %s: %v", p.Building, err)
			}
			fmt.Printf("Seeded parking space: %s\n", p.Building)
		}

		rents := []struct {
			Building string
			Name     string
			Area     float64
		}{
			{"Tower 1", "Unit 101", 85},
			{"Tower 1", "Unit 102", 60},
		}
		for _, r := range rents {
			var exists int
			if err := db.Raw("SELECT 1 FROM spaces_rent WHERE building_name = ? AND spaces_name = ?", r.Building, r.Name).Row().Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec("INSERT INTO spaces_rent (building_name, spaces_name, area_sqm, created_by_user_id, updated_by_user_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, now(), now())",
				r.Building, r.Name, r.Area, adminID, adminID).Error; err != nil {
				log.Fatalf("failed to insert rent space %s/%s: %v", r.Building, r.Name, err)
			}
			fmt.Printf("Seeded rent space: %s %s\n", r.Building, r.Name)
		}

		fmt.Println("Seeding complete")
	},
}
