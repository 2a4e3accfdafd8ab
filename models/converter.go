package models

// ToPublicProfile converts a User to its public projection. The password and
// phone fields never leave this package boundary.
func ToPublicProfile(u User) PublicProfile {
	displayName := u.DisplayName
	if displayName == "" {
		displayName = u.Username
	}
	return PublicProfile{
		Username:        u.Username,
		DisplayName:     displayName,
		Bio:             u.Bio,
		ProfileImageURL: u.ProfileImageURL,
	}
}
