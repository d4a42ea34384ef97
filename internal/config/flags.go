// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server command-line flags from args.
//
// Flags:
//
//	-a server address in format [host]:port
//	-c/-config json file path with configs
//	-backend document store backend (file, memory, sqlite, postgres, redis)
//	-data-dir directory of the file backend
//	-upload-dir directory receiving portfolio images
//	-d database DSN for sqlite/postgres
//	-redis-url redis connection URL
//	-static frontend directory served outside /api
//	-photographer-email operator mailbox
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level zerolog level
//	-quote-expiry-interval quote expiry job period, 0 disables it
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress       NetAddress
		jsonConfigPath      string
		backend             string
		dataDir             string
		uploadDir           string
		databaseDSN         string
		redisURL            string
		staticDir           string
		photographerEmail   string
		requestTimeout      time.Duration
		logLevel            string
		quoteExpiryInterval time.Duration
	)

	fs := flag.NewFlagSet("click-storm", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&backend, "backend", "", "Document store backend")
	fs.StringVar(&dataDir, "data-dir", "", "File backend directory")
	fs.StringVar(&uploadDir, "upload-dir", "", "Portfolio image directory")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisURL, "redis-url", "", "Redis URL")
	fs.StringVar(&staticDir, "static", "", "Frontend directory")
	fs.StringVar(&photographerEmail, "photographer-email", "", "Operator mailbox")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&quoteExpiryInterval, "quote-expiry-interval", 0, "Quote expiry job period")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PhotographerEmail: photographerEmail,
			LogLevel:          logLevel,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			StaticDir:      staticDir,
		},
		Storage: Storage{
			Backend: backend,
			Files: Files{
				DataDir:   dataDir,
				UploadDir: uploadDir,
			},
			DB: DB{
				DSN: databaseDSN,
			},
			Redis: Redis{
				URL: redisURL,
			},
		},
		Workers: Workers{
			QuoteExpiryInterval: quoteExpiryInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on every interface. Any other host must be
// "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}
	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
