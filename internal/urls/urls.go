package urls

// Documentation URLs for guides and troubleshooting
// All URLs point to the documentation site at https://muurk.github.io/feedbackhub/

// BackendSetup explains how to start the FeedbackHub backend locally
// or in a container, and which port it listens on.
const BackendSetup = "https://muurk.github.io/feedbackhub/backend/running/"

// APIReference documents the REST endpoints the client talks to.
const APIReference = "https://muurk.github.io/feedbackhub/backend/api/"

// Configuration covers the config file, environment variables and flags.
const Configuration = "https://muurk.github.io/feedbackhub/client/configuration/"

// GettingStarted is the quick start guide for new users.
const GettingStarted = "https://muurk.github.io/feedbackhub/getting-started/"
