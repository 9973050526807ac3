package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/slighter12/go-lib/database/postgres"
)

// canonicalizeEnvKey maps an env var name onto the key path koanf already
// knows from the YAML file, so POSTGRES_MASTER_USERNAME finds
// postgres.master.userName. Segments without a YAML counterpart are lowercased.
func canonicalizeEnvKey(name string, known map[string]any) string {
	var path []string
	node := known

	for _, segment := range strings.Split(name, "_") {
		if segment == "" {
			continue
		}

		key, child := lookupFold(node, segment)
		path = append(path, key)
		node = child
	}

	return strings.Join(path, ".")
}

// lookupFold finds a key equal to segment ignoring case and punctuation.
// It returns the lowercased segment and a nil child when nothing matches.
func lookupFold(node map[string]any, segment string) (string, map[string]any) {
	want := foldKey(segment)
	for key, value := range node {
		if foldKey(key) == want {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return strings.ToLower(segment), nil
}

func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return -1
		}
	}, s)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}
// for n = 0, 1, ... until a host or port is missing.
func replicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		get := func(field string) string {
			return os.Getenv("POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_" + field)
		}

		host, port := get("HOST"), get("PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: get("USERNAME"),
			Password: get("PASSWORD"),
		})
	}
}
