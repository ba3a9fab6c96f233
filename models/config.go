package models

// CommandsConfig represents the "commands" section of config.yaml.
type CommandsConfig struct {
	Auth AuthConfig `json:"auth" mapstructure:"auth"`
}

// AuthConfig lists the identities allowed to run privileged commands in
// addition to members holding the native Discord permissions.
type AuthConfig struct {
	Developers  []string `json:"developers" mapstructure:"developers"`   // user IDs with unconditional access
	AdminsRoles []string `json:"admin_roles" mapstructure:"admin_roles"` // role IDs treated as admins
}

// AutoclearConfig represents the "autoclear" section of config.yaml.
type AutoclearConfig struct {
	Database      string `json:"database" mapstructure:"database"`             // sqlite path
	SweepInterval string `json:"sweep_interval" mapstructure:"sweep_interval"` // cron spec for the sweeper
	NoticeOnBots  bool   `json:"notice_on_bots" mapstructure:"notice_on_bots"` // carry notices for bot-authored messages
}
