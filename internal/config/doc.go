// Package config provides configuration parsing for crel projects.
//
// The configuration is stored in crel.json at the project root and is only
// used by the crel command (build, dev server, publish); the library itself
// needs no configuration.
//
// # Configuration File Structure
//
//	{
//	  "pages": "pages",
//	  "output": "dist",
//	  "maxDepth": 256,
//	  "dev": {
//	    "port": 3000,
//	    "host": "localhost",
//	    "hotReload": true,
//	    "metrics": true
//	  },
//	  "publish": {
//	    "bucket": "my-site",
//	    "prefix": "www/",
//	    "region": "eu-west-1",
//	    "endpoint": ""
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.LoadFromWorkingDir()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Pages:", cfg.PagesPath())
package config
