/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	portKey            = "port"
	grpcPortKey        = "grpc_port"
	staticDirKey       = "static_dir"
	environmentKey     = "environment"
	allowedOriginsKey  = "allowed_origins"
	journalKey         = "journal"
	logLevelKey        = "log_level"
	inboxSizeKey       = "inbox_size"
	sendBufferKey      = "send_buffer"
	shutdownTimeoutKey = "shutdown_timeout"
)

// Config is the server configuration after flags, env and file are merged.
type Config struct {
	Port            int           `mapstructure:"port"`
	GRPCPort        int           `mapstructure:"grpc_port"`
	StaticDir       string        `mapstructure:"static_dir"`
	Environment     string        `mapstructure:"environment"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	Journal         string        `mapstructure:"journal"`
	LogLevel        string        `mapstructure:"log_level"`
	InboxSize       int           `mapstructure:"inbox_size"`
	SendBuffer      int           `mapstructure:"send_buffer"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return cfg, nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "roomchat",
	Short: "Room-based chat relay",
	Long: `roomchat relays chat messages between clients grouped into named rooms.
Browsers connect over WebSocket at /ws, terminal clients over gRPC.
Running without a subcommand starts the server.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.roomchat.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("journal", "", "Path of the SQLite presence journal (empty disables it)")

	viper.BindPFlag(logLevelKey, rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag(journalKey, rootCmd.PersistentFlags().Lookup("journal"))
	viper.BindEnv(logLevelKey, "LOG_LEVEL")

	viper.SetDefault(logLevelKey, "info")
	viper.SetDefault(journalKey, "")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".roomchat")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "Error reading config file:", err)
		}
	}
}
