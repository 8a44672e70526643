// file: internals/features/school/holidays/scheduler/provision_scheduler.go
package scheduler

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	schoolModel "schoolku_backend/internals/features/lembaga/schools/model"
	holidaySvc "schoolku_backend/internals/features/school/holidays/service"
)

type ProvisionCronConfig struct {
	Enabled      bool
	CronSchedule string
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	default:
		return false
	}
}

// ── ENTRYPOINT: panggil dari main.go
// Pre-provision kalender libur semua sekolah aktif di background, supaya
// request pertama di tahun baru tidak menanggung biaya generate.
// Opt-in via ENV; default mati — lazy provisioning di middleware tetap
// jadi jaring pengaman.
func StartProvisionCron(db *gorm.DB) {
	cfg := ProvisionCronConfig{
		Enabled:      getEnvBool("PROVISION_CRON_ENABLED", false),
		CronSchedule: getEnvOrDefault("PROVISION_CRON_SCHEDULE", "30 2 * * *"),
	}
	if !cfg.Enabled {
		log.Println("[PROVISION-CRON] disabled (set PROVISION_CRON_ENABLED=true untuk mengaktifkan)")
		return
	}

	prov := holidaySvc.NewCalendarProvisioner(db)

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc(cfg.CronSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
		defer cancel()
		runProvision(ctx, db, prov)
	})
	if err != nil {
		log.Fatalf("[PROVISION-CRON] add cron gagal: %v", err)
	}
	log.Printf("[PROVISION-CRON] started schedule=%q", cfg.CronSchedule)
	c.Start()
}

func runProvision(ctx context.Context, db *gorm.DB, prov *holidaySvc.CalendarProvisioner) {
	var schoolIDs []uuid.UUID
	if err := db.WithContext(ctx).
		Model(&schoolModel.SchoolModel{}).
		Where("school_is_active = TRUE").
		Pluck("school_id", &schoolIDs).Error; err != nil {
		log.Printf("[PROVISION-CRON] list schools gagal: %v", err)
		return
	}

	year := time.Now().UTC().Year()
	for _, sid := range schoolIDs {
		if ctx.Err() != nil {
			log.Printf("[PROVISION-CRON] dihentikan: %v", ctx.Err())
			return
		}
		// Ensure sudah log + swallow error per sekolah
		prov.Ensure(ctx, sid, year)
		prov.Ensure(ctx, sid, year+1)
	}
	log.Printf("[PROVISION-CRON] selesai; schools=%d year=%d..%d", len(schoolIDs), year, year+1)
}
