package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Room      RoomConfig
	WebSocket WebSocketConfig
}

type ServerConfig struct {
	Address string
}

type RoomConfig struct {
	HistoryLimit int // 每個房間保留的歷史訊息上限
}

type WebSocketConfig struct {
	MaxMessageSize int64 // 單一訊息的大小上限（bytes）
	SendBuffer     int   // 每個連線的發送緩衝區大小
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./pkg/config")

	// 預設值，找不到配置文件時直接使用預設啟動
	viper.SetDefault("server.address", ":3000")
	viper.SetDefault("room.historylimit", 100)
	viper.SetDefault("websocket.maxmessagesize", 4096)
	viper.SetDefault("websocket.sendbuffer", 256)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
