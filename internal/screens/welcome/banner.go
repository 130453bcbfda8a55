package welcome

const banner = ` ___  _____  _   _  ____  ____  ____
/ __)(_   _)( )_( )(  _ \(_  _)(_   )
\__ \  )(    ) _ (  )(_) )_)(_  / /_
(___/ (__)  (_) (_)(____/(____)(____)

      your study review buddy`
