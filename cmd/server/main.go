package main

import (
	"fmt"
	"log"

	"terminal-terrace/course-service/config"
	"terminal-terrace/course-service/internal/database"
	"terminal-terrace/course-service/internal/model"
	"terminal-terrace/course-service/internal/route"
)

func main() {
	config.MustLoad("config.yaml")
	database.InitDatabase()

	if err := model.InitTable(database.PostgresDB); err != nil {
		log.Fatalf("初始化数据表失败: %v", err)
	}

	r := route.SetupRouter()

	addr := fmt.Sprintf(":%d", config.Conf.Server.Port)
	if config.Conf.Server.Port == 0 {
		addr = ":8080"
	}
	if err := r.Run(addr); err != nil {
		log.Fatalf("服务启动失败: %v", err)
	}
}
