package main

import (
	"log"

	_ "github.com/esquireinternationalfinancing-code/Sxa-Exchange/docs"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/app"
)

// @title           Sxa Exchange API
// @version         1.0
// @description     API конвертера валют: текущий и исторические курсы через генеративную модель

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
func main() {
	app, err := app.NewApp()
	if err != nil {
		log.Fatalf("Ошибка создания приложения: %v", err)
	}

	app.BuildConverterLayer()
	app.BuildHistoryLayer()

	if err := app.BuildWebLayer(); err != nil {
		log.Fatalf("Ошибка сборки web-слоя: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Fatalf("Ошибка при работе приложения: %v", err)
	}
}
