package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"quote-hunt/config"
	"quote-hunt/database"
	"quote-hunt/logger"
	"quote-hunt/web"
	"quote-hunt/web/service"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			if err := database.CloseDB(); err != nil {
				logger.Warning("close db err:", err)
			}
			logger.CloseLogger()
			return
		}
	}
}

func resetSetting() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	settingService := service.SettingService{}
	err = settingService.ResetSettings()
	if err != nil {
		fmt.Println("reset setting failed:", err)
	} else {
		fmt.Println("reset setting success")
	}
}

func showSetting() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	settingService := service.SettingService{}
	port, err := settingService.GetPort()
	if err != nil {
		fmt.Println("get current port failed, error info:", err)
	}
	publicURL, err := settingService.GetPublicURL()
	if err != nil {
		fmt.Println("get public URL failed, error info:", err)
	}
	introLocation, err := settingService.GetIntroLocation()
	if err != nil {
		fmt.Println("get intro location failed, error info:", err)
	}
	hash, err := settingService.GetAdminPasswordHash()
	if err != nil {
		fmt.Println("get admin password failed, error info:", err)
	}
	fmt.Println("current settings as follows:")
	fmt.Println("port:", port)
	fmt.Println("publicURL:", publicURL)
	fmt.Println("introLocation:", introLocation)
	fmt.Println("admin password configured:", hash != "")
}

func updateSetting(port int, password string, publicURL string, introLocation string) {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	settingService := service.SettingService{}

	if port > 0 {
		err := settingService.SetPort(port)
		if err != nil {
			fmt.Println("set port failed:", err)
		} else {
			fmt.Printf("set port %v success\n", port)
		}
	}
	if password != "" {
		err := settingService.SetAdminPassword(password)
		if err != nil {
			fmt.Println("set admin password failed:", err)
		} else {
			fmt.Println("set admin password success")
		}
	}
	if publicURL != "" {
		err := settingService.SetPublicURL(publicURL)
		if err != nil {
			fmt.Println("set public URL failed:", err)
		} else {
			fmt.Println("set public URL success")
		}
	}
	if introLocation != "" {
		err := settingService.SetIntroLocation(introLocation)
		if err != nil {
			fmt.Println("set intro location failed:", err)
		} else {
			fmt.Println("set intro location success")
		}
	}
}

func main() {
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use: "quote-hunt",
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var settingCmd = &cobra.Command{
		Use:   "setting",
		Short: "Set settings",
	}

	var resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Reset all settings",
		Run: func(cmd *cobra.Command, args []string) {
			resetSetting()
		},
	}

	var showCmd = &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		Run: func(cmd *cobra.Command, args []string) {
			showSetting()
		},
	}

	var updateCmd = &cobra.Command{
		Use:   "update",
		Short: "Update settings",
		Run: func(cmd *cobra.Command, args []string) {
			port, _ := cmd.Flags().GetInt("port")
			password, _ := cmd.Flags().GetString("password")
			publicURL, _ := cmd.Flags().GetString("publicURL")
			introLocation, _ := cmd.Flags().GetString("introLocation")
			updateSetting(port, password, publicURL, introLocation)
		},
	}

	updateCmd.Flags().Int("port", 0, "set server port")
	updateCmd.Flags().String("password", "", "set admin password")
	updateCmd.Flags().String("publicURL", "", "set the public base URL encoded into QR codes")
	updateCmd.Flags().String("introLocation", "", "set the intro location excluded from statistics")

	settingCmd.AddCommand(resetCmd, showCmd, updateCmd)

	rootCmd.AddCommand(runCmd, settingCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
