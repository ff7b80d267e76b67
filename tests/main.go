// Admin bootstrap seeder. The portal API cannot create its first admin
// (promotion requires an existing admin), so this tool writes one directly
// to the store at deployment time:
//
//	go run ./tests -email admin@example.com -name "Portal Admin"
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"doctorsportal/config"
	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	email := flag.String("email", "", "email of the admin to provision")
	name := flag.String("name", "", "display name of the admin")
	flag.Parse()

	if *email == "" {
		log.Fatal("usage: seedadmin -email <email> [-name <name>]")
	}

	config.LoadConfig()
	database.InitDB()

	coll := database.DB().Collection("users")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{"email": *email}
	update := bson.M{
		"$set": bson.M{
			"role":       models.RoleAdmin,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"email":      *email,
			"name":       *name,
			"created_at": now,
		},
	}

	result, err := coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		log.Fatalf("Failed to provision admin %s: %v", *email, err)
	}

	if result.UpsertedCount > 0 {
		log.Printf("Created admin %s", *email)
	} else {
		log.Printf("Promoted existing user %s to admin", *email)
	}
}
