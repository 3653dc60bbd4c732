// Command server exposes the planner over HTTP.
package main

import (
	"log"
	"os"
	"strings"

	"github.com/cloudwego/hertz/pkg/app/server"

	httpadapter "pushworld/internal/adapter/http"
	metricsinmem "pushworld/internal/adapter/metrics/inmemory"
	gormrepo "pushworld/internal/adapter/repo/gorm"
	memrepo "pushworld/internal/adapter/repo/memory"
	"pushworld/internal/app/ports"
	"pushworld/internal/app/solve"
)

func main() {
	records := buildRecordRepoFromEnv()
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		SolveUC: solve.UseCase{
			Records: records,
			Metrics: kpiRecorder,
		},
		Records: records,
		KPI:     kpiRecorder,
	}

	addr := strings.TrimSpace(os.Getenv("PUSHWORLD_HTTP_ADDR"))
	if addr == "" {
		addr = ":8080"
	}

	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("pushworld server listening on %s", addr)
	s.Spin()
}

func buildRecordRepoFromEnv() ports.SolveRecordRepository {
	dsn := strings.TrimSpace(os.Getenv("PUSHWORLD_DB_DSN"))
	if dsn == "" {
		log.Println("PUSHWORLD_DB_DSN not set; storing solve records in memory")
		return memrepo.NewSolveRecordRepo()
	}

	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	return gormrepo.NewSolveRecordRepo(db)
}
