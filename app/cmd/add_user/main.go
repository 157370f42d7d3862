package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/config"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/database"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/routes/auth"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/services"
)

// Creates a teacher account from the command line, for bootstrapping a
// fresh deployment before the signup form is reachable.
func main() {
	fullName := flag.String("name", "", "teacher full name")
	email := flag.String("email", "", "teacher email")
	password := flag.String("password", "", "initial password")
	classTaught := flag.String("class", "", "class taught")
	flag.Parse()

	if *fullName == "" || *email == "" || *password == "" {
		log.Fatal("usage: add_user -name <name> -email <email> -password <password> [-class <class>]")
	}

	config.Init()
	db := config.GetDB()
	defer db.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		Role:     models.RoleTeacher,
		FullName: *fullName,
		Username: strings.ToLower(strings.ReplaceAll(*fullName, " ", "")),
		Email:    *email,
		Password: hashed,
	}
	for {
		user.UIN = services.GenerateTeacherUIN()
		err = database.CreateUser(db, user)
		if err == nil {
			break
		}
		if !database.IsUniqueViolation(err) {
			log.Fatal("Error creating user:", err)
		}
	}

	teacher := &models.Teacher{
		UserID:      user.ID,
		FullName:    *fullName,
		Username:    user.Username,
		Email:       *email,
		ClassTaught: *classTaught,
		UIN:         user.UIN,
		Password:    hashed,
	}
	if err := database.CreateTeacher(db, teacher); err != nil {
		log.Fatal("Error creating teacher profile:", err)
	}

	fmt.Printf("Teacher created: %s (%s), UIN %s\n", *fullName, *email, user.UIN)
}
