package badge

import "github.com/peve-dev/peve-backend/internal/domain"

// DefaultCatalog is the badge set shipped with the platform.
func DefaultCatalog() []*domain.Badge {
	count := func(target domain.StatKey, threshold int) domain.Criteria {
		return domain.CountCriteria{Target: target, Threshold: threshold}
	}

	return []*domain.Badge{
		{Key: "first_idea", Name: "Idea Spark", Description: "Shared your first idea", Icon: "lightbulb", Category: "creation", Rarity: domain.BadgeRarityCommon, Criteria: count(domain.StatIdeas, 1), Points: 10},
		{Key: "idea_machine", Name: "Idea Machine", Description: "Shared 10 ideas", Icon: "zap", Category: "creation", Rarity: domain.BadgeRarityRare, Criteria: count(domain.StatIdeas, 10), Points: 50},
		{Key: "first_project", Name: "Builder", Description: "Started your first project", Icon: "hammer", Category: "creation", Rarity: domain.BadgeRarityCommon, Criteria: count(domain.StatProjects, 1), Points: 20},
		{Key: "serial_builder", Name: "Serial Builder", Description: "Started 5 projects", Icon: "layers", Category: "creation", Rarity: domain.BadgeRarityEpic, Criteria: count(domain.StatProjects, 5), Points: 100},
		{Key: "conversation_starter", Name: "Conversation Starter", Description: "Left 10 comments", Icon: "message-circle", Category: "community", Rarity: domain.BadgeRarityCommon, Criteria: count(domain.StatComments, 10), Points: 15},
		{Key: "crowd_favorite", Name: "Crowd Favorite", Description: "Received 50 likes", Icon: "heart", Category: "community", Rarity: domain.BadgeRarityRare, Criteria: count(domain.StatLikesReceived, 50), Points: 50},
		{Key: "bookmarked", Name: "Bookmarked", Description: "Your work was saved 10 times", Icon: "bookmark", Category: "community", Rarity: domain.BadgeRarityCommon, Criteria: count(domain.StatSavesReceived, 10), Points: 20},
		{Key: "civic_voter", Name: "Civic Voter", Description: "Voted on 25 ideas", Icon: "thumbs-up", Category: "community", Rarity: domain.BadgeRarityCommon, Criteria: count(domain.StatVotes, 25), Points: 15},
		{Key: "team_player", Name: "Team Player", Description: "Completed your first collaboration", Icon: "users", Category: "collaboration", Rarity: domain.BadgeRarityRare, Criteria: count(domain.StatCollaborations, 1), Points: 30},
		{Key: "polymath", Name: "Polymath", Description: "Listed 10 skills", Icon: "cpu", Category: "profile", Rarity: domain.BadgeRarityCommon, Criteria: count(domain.StatSkills, 10), Points: 10},
		{Key: "complete_profile", Name: "All Set", Description: "Filled in every profile field", Icon: "check-circle", Category: "profile", Rarity: domain.BadgeRarityCommon, Criteria: domain.CustomCriteria{Logic: "profile_completion >= 100"}, Points: 20},
		{Key: "regular", Name: "Regular", Description: "Member for four weeks", Icon: "calendar", Category: "profile", Rarity: domain.BadgeRarityCommon, Criteria: domain.CustomCriteria{Logic: "account_age_weeks >= 4"}, Points: 10},
		{Key: "early_adopter", Name: "Early Adopter", Description: "Joined during the launch", Icon: "sunrise", Category: "special", Rarity: domain.BadgeRarityEpic, Criteria: domain.CustomCriteria{Logic: "early_adopter"}, Points: 50},
		{Key: "beta_tester", Name: "Beta Tester", Description: "Helped test the beta", Icon: "flask", Category: "special", Rarity: domain.BadgeRarityEpic, Criteria: domain.CustomCriteria{Logic: "beta_tester"}, Points: 50},
		{Key: "top_ten", Name: "Top Ten", Description: "Reached the top 10 of the leaderboard", Icon: "trophy", Category: "leaderboard", Rarity: domain.BadgeRarityLegendary, Criteria: domain.RankCriteria{Threshold: 10}, Points: 200},
	}
}
