// Package config loads pagelayout.json (or pagelayout.yaml).
//
// # Configuration File Structure
//
//	{
//	  "title": "Dashboard",
//	  "lang": "en",
//	  "server": {
//	    "host": "localhost",
//	    "port": 3000,
//	    "shutdownTimeout": "10s"
//	  },
//	  "render": {
//	    "pretty": true
//	  },
//	  "publish": {
//	    "bucket": "my-site",
//	    "prefix": "preview/",
//	    "region": "eu-west-1"
//	  },
//	  "metrics": {
//	    "namespace": "pagelayout"
//	  },
//	  "log": {
//	    "level": "debug",
//	    "format": "json"
//	  }
//	}
//
// The same keys may be written as YAML in pagelayout.yaml, which is read
// only when pagelayout.json is absent.
//
// Settings may be overridden by PAGELAYOUT_* environment variables, which are
// also read from a .env file next to the config when one exists.
//
// # Usage
//
//	cfg, err := config.LoadOrDefault(".")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.LoadEnv(); err != nil {
//	    return err
//	}
package config
