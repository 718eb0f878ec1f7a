// dmd downloads registry data (blocks.json, biomes.json and friends) for a
// given game version into a local directory, for use with --data-dir.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	get "github.com/hashicorp/go-getter"
)

func main() {
	var (
		base     = flag.String("base", "https://github.com/PrismarineJS/minecraft-data.git", "base url")
		platform = flag.String("platform", "pc", "platform of data files")
		ver      = flag.String("version", "1.20.1", "game version")
		out      = flag.String("o", "./data", "output dir path")
	)
	flag.Parse()

	if *out == "" {
		log.Fatal("output dir path required")
	}
	if *platform == "" {
		log.Fatal("platform required")
	}
	if *ver == "" {
		log.Fatal("version required")
	}

	path := fmt.Sprintf("%s/%s-%s", *out, *platform, *ver)

	if err := os.RemoveAll(path); err != nil {
		log.Fatal(err)
	}

	log.Printf("start downloading registry data to %s", path)

	// https://github.com/PrismarineJS/minecraft-data/tree/master/data/pc/1.20.1
	url := fmt.Sprintf("git::%s//data/%s/%s", *base, *platform, *ver)

	if err := get.Get(path, url); err != nil {
		log.Fatal(err)
	}

	log.Printf("done downloading registry data to %s", path)
}
