package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/asynkron/protoactor-go/actor"

	"github.com/phuhao00/yutnori-server/server/configs"
	internalActor "github.com/phuhao00/yutnori-server/server/internal/actor"
	"github.com/phuhao00/yutnori-server/server/internal/network"
	"github.com/phuhao00/yutnori-server/server/internal/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the configuration file")
	port := flag.Int("port", configs.DefaultTCPPort, "TCP port to listen on (overrides the config file)")
	flag.Parse()

	if err := configs.CreateExampleConfigFile(*configPath); err != nil {
		log.Printf("Could not create example config at %s: %v", *configPath, err)
	}
	cfg, err := configs.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	// The flag wins over the file only when it was given explicitly.
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "port" {
			cfg.Server.TCPPort = *port
		}
	})

	utils.SetLogLevel(cfg.Server.LogLevel)
	utils.LogInfo("Starting Yutnori game server...")

	actorSystem := actor.NewActorSystem()

	hubProps := actor.PropsFromProducer(internalActor.NewHubActor)
	hubPID, err := actorSystem.Root.SpawnNamed(hubProps, "hub")
	if err != nil {
		utils.LogFatalf("Failed to spawn hub actor: %v", err)
	}

	tcpServer := network.NewTCPServer(cfg.Server.Host, cfg.Server.TCPPort, actorSystem, hubPID)
	if err := tcpServer.Start(); err != nil {
		utils.LogFatalf("Failed to start TCP server: %v", err)
	}

	var wsGateway *network.WSGateway
	if cfg.Server.WSPort != 0 {
		wsGateway = network.NewWSGateway(cfg.Server.Host, cfg.Server.WSPort, tcpServer)
		if err := wsGateway.Start(); err != nil {
			utils.LogFatalf("Failed to start WebSocket gateway: %v", err)
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.LogInfo("Shutting down...")
	if wsGateway != nil {
		wsGateway.Stop()
	}
	tcpServer.Stop()
	if err := actorSystem.Root.StopFuture(hubPID).Wait(); err != nil {
		utils.LogWarnf("Error stopping hub actor: %v", err)
	}
	actorSystem.Shutdown()
	utils.LogInfo("Server shut down.")
}
