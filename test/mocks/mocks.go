// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `make mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/kvstore.go -destination=kvstore_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/inventory_service.go -destination=inventory_service_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/backup_storage.go -destination=backup_storage_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/report.go -destination=report_renderer_mock.go -package=mocks
