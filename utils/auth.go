package utils

import (
	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"

	"automaid/models"
)

// Auth provides methods for authorization checks on rule commands.
type Auth struct {
	config models.CommandsConfig
}

// NewAuth creates a new Auth instance with the loaded configuration.
func NewAuth() (*Auth, error) {
	var commandsConfig models.CommandsConfig
	if err := viper.UnmarshalKey("commands", &commandsConfig); err != nil {
		return nil, err
	}
	return &Auth{config: commandsConfig}, nil
}

// IsDeveloper checks if a user is a developer.
func (a *Auth) IsDeveloper(userID string) bool {
	for _, devID := range a.config.Auth.Developers {
		if userID == devID {
			return true
		}
	}
	return false
}

// IsAdmin checks if a member holds a configured admin role.
func (a *Auth) IsAdmin(member *discordgo.Member) bool {
	for _, adminRoleID := range a.config.Auth.AdminsRoles {
		for _, userRoleID := range member.Roles {
			if userRoleID == adminRoleID {
				return true
			}
		}
	}
	return false
}

// CanManageRules checks whether the invoking member may mutate autoclear
// rules: native Manage Messages / Manage Guild / Administrator permission,
// or a configured role or developer grant.
func (a *Auth) CanManageRules(i *discordgo.InteractionCreate) bool {
	if i.Member == nil {
		// No member means a DM invocation; rules are guild-scoped.
		return false
	}
	const managePerms = discordgo.PermissionManageMessages |
		discordgo.PermissionManageGuild |
		discordgo.PermissionAdministrator
	if i.Member.Permissions&managePerms != 0 {
		return true
	}
	return a.IsDeveloper(i.Member.User.ID) || a.IsAdmin(i.Member)
}
