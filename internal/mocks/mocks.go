package mocks

//go:generate mockgen -destination arena_logger_mock.go -package mocks -mock_names Logger=ArenaLoggerMock github.com/sirkon/chains/internal/arena Logger
