package util

// 构建时通过 -ldflags 注入
var (
	version   = "v0.1.0"
	gitCommit = "unknown"
	buildDate = "unknown"
)

type Version struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
}

// GetVersion 返回构建版本信息
func GetVersion() Version {
	return Version{
		Version:   version,
		GitCommit: gitCommit,
		BuildDate: buildDate,
	}
}
