package main

import (
	_ "github.com/init-pkg/excel-import/docs"
	"github.com/init-pkg/excel-import/internal/bootstrap"
)

// @title			Excel Import Service API
// @version		1.0
// @description	Asynchronous spreadsheet import service with template management and progress tracking.
// @BasePath		/
func main() {
	bootstrap.Run()
}
