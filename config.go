package bankdesk

type Config struct {
	Listen   string `yaml:"listen"`
	Database struct {
		ConnectionString string `yaml:"conn_str"`
	} `yaml:"database"`
	Limits struct {
		Deposit   int64 `yaml:"deposit"`
		Withdraw  int64 `yaml:"withdraw"`
		Decide    int64 `yaml:"decide"`
		Statement int64 `yaml:"statement"`
	} `yaml:"limits"`
}
