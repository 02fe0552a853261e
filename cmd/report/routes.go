package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getadmin "next-golang/http-server/admin/get"
	upadmin "next-golang/http-server/admin/update"
	generate_excel_handler "next-golang/http-server/generate-report/generate-excel"
	gethistory "next-golang/http-server/history/get"
	calclabor "next-golang/http-server/labor/calculate"
	addmaterial "next-golang/http-server/materials/add"
	calcmaterials "next-golang/http-server/materials/calculate"
	removematerial "next-golang/http-server/materials/remove"
	upmaterial "next-golang/http-server/materials/update"
	getreport "next-golang/http-server/report/get"
	savereport "next-golang/http-server/report/save"
	sumreport "next-golang/http-server/report/summary"
	"next-golang/internal/catalog"
	"next-golang/internal/config"
	"next-golang/internal/history"
	"next-golang/internal/middleware/auth"
	generate_excel "next-golang/internal/service/generate-excel"
	"next-golang/internal/service/labor"
	"next-golang/internal/service/materials"
	"next-golang/internal/service/report"
	"next-golang/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, cat catalog.Catalog,
	hist *history.Store, laborEngine *labor.Engine, materialsEngine *materials.Engine,
	reportService *report.Service, genService *generate_excel.GenerateExcelService) *chi.Mux {

	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		// Nextの開発サーバ
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// 作業報告書: 作業時間の集計と労務費
	router.Post("/api/labor/calculation", calclabor.CalculateLabor(log, laborEngine))

	// 材料持出表: 行の追加・削除・更新と集計
	router.Post("/api/materials/add", addmaterial.AddMaterialLine(log, materialsEngine))
	router.Post("/api/materials/remove", removematerial.RemoveMaterialLine(log))
	router.Post("/api/materials/update", upmaterial.UpdateMaterialLine(log, materialsEngine))
	router.Post("/api/materials/calculation", calcmaterials.CalculateMaterials(log))

	// 品名履歴（コンボボックスの候補）
	router.Get("/api/history", gethistory.GetHistory(log, hist))

	// 報告書の保存・取得・最終集計
	router.Post("/api/report", savereport.SaveReport(log, storage, cat))
	router.Get("/api/report/{id}", getreport.GetReport(log, storage))
	router.Post("/api/report/summary", sumreport.SummarizeReport(log, reportService))

	// Excel出力
	router.Get("/api/report/excel", generate_excel_handler.GenerateReportExcel(log, genService))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Get("/catalog", getadmin.GetCatalogAdmin(log, cat))
	adminRouter.Delete("/history", upadmin.ClearHistoryAdmin(log, hist))

	router.Mount("/api/admin", adminRouter)

	// 静的配信: Nextのexport成果物があれば配る。無ければAPIのみで動く。
	frontendDir := cfg.FrontendDir
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("フロントエンドのフォルダが見つからない", slog.String("path", frontendDir))
		return router
	}

	fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))

	router.Handle("/_next/*", fileServer)
	router.Handle("/assets/*", fileServer)
	router.Handle("/img/*", fileServer)

	// SPA fallback: その他のパスはindex.htmlへ
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
