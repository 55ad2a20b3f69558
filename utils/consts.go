package utils

// environment variables
const DBUSER = "DBUSER"
const DBPASS = "DBPASS"
const DBNAME = "DBNAME"
const JWT_SECRET_KEY = "JWT_SECRET_KEY"
const ALLOWED_EMAIL_DOMAIN = "ALLOWED_EMAIL_DOMAIN"
const GOOGLE_CLIENT_ID = "GOOGLE_CLIENT_ID"
const GOOGLE_TOKENINFO_URL = "GOOGLE_TOKENINFO_URL"

// error messages
const INVALID_CREDENTIALS_ERROR = "Invalid credentials"
const EMAIL_TAKEN_ERROR = "Email already in use"
const DOMAIN_NOT_ALLOWED_ERROR = "Only %s email addresses are allowed"
const WEAK_PASSWORD_ERROR = "Password must be at least 8 characters and contain a digit"
const GENERIC_REQUEST_ERROR = "We had some trouble with that request. Please try again!"
const GOOGLE_LOGIN_ERROR = "Google sign-in could not be verified"
const NOT_AUTHENTICATED_ERROR = "Authentication required"
const NOT_AUTHORIZED_ERROR = "You do not have permission to do that"
const LOCKED_LOGIN_ERROR = "Too many failed login attempts. Please try again in %d minutes."

// auth tunables
const MAX_FAILED_LOGIN_ATTEMPTS = 5
const LOCK_WINDOW_MINUTES = 15
const TOKEN_DURATION_DAYS = 7
const TOKENINFO_TIMEOUT_SECONDS = 5
