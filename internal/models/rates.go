package models

type PairRate struct {
	From string `json:"from"`
	To   string `json:"to"`
	Rate string `json:"rate"`
	Key  string `json:"key"`
}

type FlushResult struct {
	Flushed int `json:"flushed"`
}

type ExpireResult struct {
	Expired bool `json:"expired"`
}
