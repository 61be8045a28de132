package main

import (
	"fmt"
	"net/http"

	"github.com/Jmaroja/bancodehoras/internal/config"
	appHTTP "github.com/Jmaroja/bancodehoras/internal/handler/http"
	timesheetService "github.com/Jmaroja/bancodehoras/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	service := timesheetService.NewTimesheetService(cfg.Import.DefaultTolerance)
	timesheetHandler := appHTTP.NewTimesheetHandler(service)

	router := appHTTP.NewRouter(timesheetHandler, cfg.App.FrontendURL, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
