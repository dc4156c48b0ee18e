package grisu

type Configuration struct {
	MaxEvents     int     `json:"max_events"`
	Verbosity     int     `json:"verbosity"`
	Skip          int     `json:"skip"`
	FileIn        string  `json:"file_in"`
	FileOut       string  `json:"file_out"`
	Version       string  `json:"version"`
	Qeff          float64 `json:"qeff"`
	AtmID         int     `json:"atm_id"`
	AtmProfile    string  `json:"atm_profile"`
	PrintMoreInfo bool    `json:"print_more_info"`
	NoDB          bool    `json:"no_db"`
	Host          string  `json:"host"`
	User          string  `json:"user"`
	Passwd        string  `json:"pass"`
	DBName        string  `json:"dbname"`
}

var configuration Configuration

func GetConfiguration() Configuration {
	return configuration
}

func SetConfiguration(config Configuration) {
	configuration = config
}
