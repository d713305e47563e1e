package tournament

// CompetitorNameFormat names competitors by their 1-based id
const CompetitorNameFormat = "Trainer-%d"
