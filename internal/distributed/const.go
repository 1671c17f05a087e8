package distributed

const leaderKey = "storefront:leader"
