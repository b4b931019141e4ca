//go:generate mockgen -source=../bucket_storage.go   -destination=./mock_bucket_storage.go   -package=mocks
//go:generate mockgen -source=../kv_store.go         -destination=./mock_kv_store.go         -package=mocks
//go:generate mockgen -source=../fetcher.go          -destination=./mock_fetcher.go          -package=mocks
//go:generate mockgen -source=../backend.go          -destination=./mock_backend.go          -package=mocks
//go:generate mockgen -source=../services.go         -destination=./mock_services.go         -package=mocks
//go:generate mockgen -source=../validator.go        -destination=./mock_validator.go        -package=mocks
//go:generate mockgen -source=../runtime.go         -destination=./mock_runtime.go         -package=mocks

package mocks
