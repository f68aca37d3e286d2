package main

import (
	"flag"
	"time"

	"github.com/Shreyash123-code/AICTE-project1/config"
	"github.com/Shreyash123-code/AICTE-project1/internal/catalog"
	"github.com/Shreyash123-code/AICTE-project1/internal/middleware"
	"github.com/Shreyash123-code/AICTE-project1/internal/models"
	"github.com/Shreyash123-code/AICTE-project1/internal/note"
	"github.com/Shreyash123-code/AICTE-project1/internal/svc"
	"github.com/Shreyash123-code/AICTE-project1/internal/user"
	"github.com/Shreyash123-code/AICTE-project1/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	seed := flag.Bool("seed", false, "populate branches and subjects, then keep serving")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	utils.InitLogger(cfg.AppEnv)

	svcCtx := svc.NewServiceContext(cfg)
	defer svcCtx.Close()

	// 迁移所有模型，注意被引用的表在前
	err = svcCtx.DB.AutoMigrate(
		&models.User{}, &models.Profile{},
		&models.Branch{}, &models.Subject{},
		&models.Note{}, &models.Bookmark{}, &models.Download{}, &models.Comment{},
	)
	if err != nil {
		panic("failed to migrate database: " + err.Error())
	}

	if *seed {
		if err := catalog.Seed(svcCtx.DB); err != nil {
			zap.L().Fatal("seed failed", zap.Error(err))
		}
		zap.L().Info("catalog seeded")
	}

	r := gin.Default()
	r.Use(middleware.LoggerMiddleware())

	userHandler := user.NewUserHandler(svcCtx)
	noteHandler := note.NewNoteHandler(svcCtx)
	catalogHandler := catalog.NewCatalogHandler(svcCtx)

	// 公开路由
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)
	r.GET("/branches", catalogHandler.ListBranches)
	r.GET("/branches/:id/subjects", catalogHandler.ListSubjects)

	// 浏览不要求登录，但带了 token 就能拿到自己的收藏状态
	browse := r.Group("/")
	browse.Use(middleware.OptionalJWT(cfg, svcCtx.Cache))
	{
		browse.GET("/notes", noteHandler.BrowseNotes)
		browse.GET("/notes/recent", noteHandler.RecentNotes)
	}

	// 鉴权路由
	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware(cfg, svcCtx.Cache))
	{
		users := auth.Group("/users")
		{
			users.POST("/logout", userHandler.Logout)
			users.GET("/me", userHandler.Dashboard)
			users.PUT("/me", userHandler.UpdateProfile)
		}

		notes := auth.Group("/notes")
		{
			notes.POST("",
				middleware.RateLimitMiddleware(svcCtx.Cache, "upload", 10, time.Minute),
				noteHandler.CreateNote)
			notes.GET("/:id", noteHandler.GetNote)
			notes.GET("/:id/preview", noteHandler.PreviewNote)
			notes.GET("/:id/download",
				middleware.RateLimitMiddleware(svcCtx.Cache, "download", 30, time.Minute),
				noteHandler.DownloadNote)
			notes.POST("/:id/bookmark", noteHandler.ToggleBookmark)
			notes.POST("/:id/comments", noteHandler.AddComment)
			notes.DELETE("/:id", noteHandler.DeleteNote)
		}

		auth.DELETE("/comments/:id", noteHandler.DeleteComment)
	}

	addr := ":" + cfg.ServerPort
	zap.L().Info("server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		zap.L().Fatal("server exited", zap.Error(err))
	}
}
