// Package config loads relmatch settings.
//
// Priority: environment > YAML file > Default(). A missing file is not an
// error. The merged result is checked with go-playground/validator struct
// tags before it is returned.
//
// Environment variables:
//
//	RELMATCH_LOG_LEVEL              debug | info | warn | error
//	RELMATCH_LOG_FORMAT             text | json
//	RELMATCH_PARALLEL_THRESHOLD     units below this run inline in Verify
//	RELMATCH_PARALLEL_MAX_WORKERS   Verify fan-out cap (0 = no cap)
//	RELMATCH_UNIT_THRESHOLD         symbols below this run inline in Test
//	RELMATCH_UNIT_MAX_WORKERS       Test fan-out cap (0 = no cap)
//	RELMATCH_STORE_DIR              badger directory
//	RELMATCH_STORE_IN_MEMORY        true to keep the store in memory
//	RELMATCH_FEDERATION_NAME        default federation for init/learn/verify
package config
