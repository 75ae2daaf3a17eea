// @title Digital Krishi Officer API
// @version 1.0
// @description Farmer advisory backend: AI question answering, plant diagnosis, weather alerts, crop prices and government schemes
// @host localhost:8080
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"krishi-officer-go/internal/bootstrap"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML config file")
	flag.Parse()

	fmt.Printf("[%s] [INFO] [BOOT] starting krishi-server...\n", time.Now().Format("2006-01-02 15:04:05.000"))
	if err := bootstrap.Run(context.Background(), bootstrap.Options{
		ConfigPath: *configPath,
		DotEnv:     true,
	}); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "krishi-server failed: %v\n", err)
		os.Exit(1)
	}
}
