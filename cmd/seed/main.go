package main

import (
	"flag"
	"log"

	"golang.org/x/crypto/bcrypt"

	"minit-mesyuarat/internal/config"
	"minit-mesyuarat/internal/logger"
	"minit-mesyuarat/internal/model"
)

// Seeds the schema and the secretary account used to sign in to the form.
func main() {
	configFile := flag.String("config", "etc/config-dev.yaml", "config file")
	username := flag.String("user", "setiausaha", "login username")
	password := flag.String("pass", "minit123", "login password")
	name := flag.String("name", "Setiausaha DPPKR", "display name")
	flag.Parse()

	logger.Init(config.LogConfig{Level: "info", Console: true})

	cfg := config.Load(*configFile)
	db, err := cfg.OpenGormDB()
	if err != nil {
		log.Fatal("db connect failed: ", err)
	}

	if err := db.AutoMigrate(&model.Member{}, &model.MinuteArchive{}); err != nil {
		log.Fatal("migrate failed: ", err)
	}
	logger.Info("schema migrated")

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("hash password: ", err)
	}

	var existing model.Member
	err = db.Where("username = ?", *username).First(&existing).Error
	if err == nil {
		if err := db.Model(&existing).Updates(map[string]interface{}{
			"password": string(hash), "name": *name,
		}).Error; err != nil {
			log.Fatal("update member: ", err)
		}
		logger.Info("member updated", "username", *username)
		return
	}

	m := model.Member{Username: *username, Password: string(hash), Name: *name, Role: "setiausaha"}
	if err := db.Create(&m).Error; err != nil {
		log.Fatal("create member: ", err)
	}
	logger.Info("member created", "username", *username, "id", m.ID)
}
