// Package main provisions users out-of-band: it hashes a password with
// bcrypt and inserts the user row the web service authenticates against.
// The service itself exposes no registration route.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/VIJ4YKUMAR/todolist-API/internal/db"
	"github.com/VIJ4YKUMAR/todolist-API/internal/repository"
	"github.com/VIJ4YKUMAR/todolist-API/internal/service"
)

func main() {
	dsn := flag.String("d", "", "database connection string")
	username := flag.String("u", "", "username to create")
	password := flag.String("p", "", "password for the new user")
	flag.Parse()

	if err := validateArgs(*dsn, *username, *password); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	postgresDB, err := db.InitPostgres(*dsn)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect:", err)
		os.Exit(1)
	}
	defer postgresDB.Close()

	digest, err := service.HashPassword(*password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash password:", err)
		os.Exit(1)
	}

	repo := repository.NewPostgresAuthRepository(postgresDB)
	user, err := repo.CreateUser(context.Background(), *username, digest)
	if err != nil {
		fmt.Fprintln(os.Stderr, "create user:", err)
		os.Exit(1)
	}

	fmt.Printf("created user %q with id %d\n", user.Username, user.ID)
}

// validateArgs checks that all required flags were provided. The schema
// bounds username at 50 characters and the bcrypt digest column at 100.
func validateArgs(dsn, username, password string) error {
	if dsn == "" {
		return fmt.Errorf("missing -d: database connection string")
	}
	if username == "" {
		return fmt.Errorf("missing -u: username")
	}
	if len(username) > 50 {
		return fmt.Errorf("username longer than 50 characters")
	}
	if password == "" {
		return fmt.Errorf("missing -p: password")
	}
	return nil
}
